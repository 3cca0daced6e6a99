package render

import (
	"encoding/json"
	"io"
)

// PrintJSON ignores options and writes the untrimmed values.
func PrintJSON(values []any, output io.Writer, options *Options) error {
	if values == nil {
		values = []any{}
	}
	encoder := json.NewEncoder(output)
	return encoder.Encode(snapshot{Length: len(values), Values: values})
}
