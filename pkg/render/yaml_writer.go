package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintYAML(values []any, output io.Writer, options *Options) error {
	if values == nil {
		values = []any{}
	}
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot{Length: len(values), Values: values}); err != nil {
		return err
	}
	return encoder.Close()
}
