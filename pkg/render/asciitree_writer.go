package render

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree draws the chain from the sentinel down: every element is
// the only child of its predecessor.
func convertToTree(values []any, options *Options) AsciiNode {
	root := AsciiNode{
		Label: "head",
		Props: []string{fmt.Sprintf("length: %d", len(values))},
	}
	var tail *AsciiNode
	for i := len(values) - 1; i >= 0; i-- {
		n := AsciiNode{Label: fmt.Sprintf("[%d] %s", i, TrimValue(values[i], trimOf(options)))}
		if tail != nil {
			n.Children = []AsciiNode{*tail}
		}
		tail = &n
	}
	if tail != nil {
		root.Children = []AsciiNode{*tail}
	}
	return root
}

func PrintAsciiTree(values []any, output io.Writer, options *Options) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(values, options)))
	return err
}
