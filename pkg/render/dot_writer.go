package render

import (
	"fmt"
	"io"
	"strings"
)

func PrintDOT(values []any, output io.Writer, options *Options) error {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("  rankdir=\"LR\";\n")
	sb.WriteString("  bgcolor=\"transparent\";\n")
	sb.WriteString("  node [shape=\"box\", style=\"filled\", fontname=\"Ubuntu Mono\"];\n")
	sb.WriteString("  head [label=\"head\", fillcolor=\"lightgray\"];\n")

	prev := "head"
	for i, v := range values {
		id := fmt.Sprintf("n%d", i)
		label := escapeDOTValue(TrimValue(v, trimOf(options)))
		fmt.Fprintf(&sb, "  %s [label=\"%s\", fillcolor=\"lightblue\"];\n", id, label)
		fmt.Fprintf(&sb, "  %s -> %s;\n", prev, id)
		prev = id
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(output, sb.String())
	return err
}

func escapeDOTValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "\n", "\\n")
	return value
}
