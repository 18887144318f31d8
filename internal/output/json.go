// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"dfm/internal/jsonutil"
)

func init() {
	Register("json", func(w io.Writer, list []Scored, _ bool) error {
		return WriteJSON(w, list)
	})
	Register("jsonl", func(w io.Writer, list []Scored, _ bool) error {
		return WriteJSONL(w, list)
	})
}

// WriteJSON writes a single pretty-indented JSON array of v1 results.
func WriteJSON(w io.Writer, list []Scored) error {
	return jsonutil.EncodePretty(w, toAPIResults(list))
}

// WriteJSONL streams each result as one compact JSON line (v1).
func WriteJSONL(w io.Writer, list []Scored) error {
	enc := json.NewEncoder(w)
	for _, s := range list {
		if err := enc.Encode(ToAPIResult(s)); err != nil {
			return err
		}
	}
	return nil
}
