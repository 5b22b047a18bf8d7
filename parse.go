package main

import (
	"os"

	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/russross/blackfriday/v2"
)

func parseFile(file string) (tasks, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return tasks{}, err
	}
	return parse(b), nil
}

func parse(b []byte) tasks {
	md := blackfriday.New()
	return tasks{node: md.Parse(b)}
}

type heading struct {
	Level int
	Text  string
}

func (h heading) String() string {
	text := ""
	for i := 0; i < h.Level; i++ {
		text += "#"
	}
	return text + " " + h.Text
}

// outline lists the headings of a markdown document in order.
func outline(b []byte) []heading {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := gomarkdown.Parse(b, p)

	var (
		headings []heading
		current  *heading
	)
	ast.Walk(doc, ast.NodeVisitorFunc(func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Heading:
			if entering {
				current = &heading{Level: n.Level}
			} else if current != nil {
				headings = append(headings, *current)
				current = nil
			}
		case *ast.Text:
			if current != nil {
				current.Text += string(n.Literal)
			}
		case *ast.Code:
			if current != nil {
				current.Text += string(n.Literal)
			}
		}
		return ast.GoToNext
	}))
	return headings
}
