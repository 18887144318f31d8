// cmd/dfm-blueprint/main.go
package main

import (
	"os"

	"dfm/internal/blueprintapp"
)

func main() {
	os.Exit(blueprintapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
