package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// MarkdownToText flattens a markdown document (e.g. a Reddit selftext body)
// into plain text suitable for an article description.
func MarkdownToText(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	flatten(doc, &buf)

	return strings.Join(strings.Fields(buf.String()), " ")
}

func flatten(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		buf.WriteByte(' ')
		return
	case *ast.Code:
		buf.Write(n.Literal)
		buf.WriteByte(' ')
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		buf.WriteByte(' ')
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}
	for _, child := range container.Children {
		flatten(child, buf)
	}
}
