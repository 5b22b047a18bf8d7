package main

import (
	"io"

	"github.com/laher/markdownfmt/markdown"
	"github.com/russross/blackfriday/v2"
)

func headingNode(parent *blackfriday.Node, level int, text string) *blackfriday.Node {
	h := blackfriday.NewNode(blackfriday.Heading)
	h.Level = level
	parent.AppendChild(h)
	textNode := blackfriday.NewNode(blackfriday.Text)
	textNode.Literal = []byte(text)
	h.AppendChild(textNode)
	return h
}

// headingText joins the text under a heading node.
func headingText(h *blackfriday.Node) string {
	var text []byte
	h.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (node.Type == blackfriday.Text || node.Type == blackfriday.Code) {
			text = append(text, node.Literal...)
		}
		return blackfriday.GoToNext
	})
	return string(text)
}

func newRenderer(terminal bool) blackfriday.Renderer {
	return markdown.NewRenderer(&markdown.Options{Terminal: terminal, HashHeaders: true})
}

func render(r blackfriday.Renderer, w io.Writer, ast *blackfriday.Node) {
	r.RenderHeader(w, ast)
	ast.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return r.RenderNode(w, node, entering)
	})
	r.RenderFooter(w, ast)
}
