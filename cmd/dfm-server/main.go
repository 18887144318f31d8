// cmd/dfm-server/main.go
package main

import (
	"log/slog"
	"os"

	"dfm/internal/server"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	srv, err := server.New(server.LoadConfig(), log)
	if err != nil {
		log.Error("startup", "err", err)
		os.Exit(1)
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("serve", "err", err)
		os.Exit(1)
	}
}
