package main

import (
	"log"
	"strings"

	"github.com/russross/blackfriday/v2"
)

type tasks struct {
	node *blackfriday.Node
}

// ByHeader returns the lists under every heading whose text contains s,
// up to the next heading of the same or a higher level.
func (t tasks) ByHeader(s string) []*blackfriday.Node {
	lists := []*blackfriday.Node{}
	inLevel := -1
	t.node.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch node.Type {
		case blackfriday.Heading:
			if inLevel > -1 && node.Level <= inLevel {
				inLevel = -1
			}
			if inLevel == -1 && strings.Contains(headingText(node), s) {
				inLevel = node.Level
			}
			return blackfriday.SkipChildren
		case blackfriday.List:
			if inLevel > -1 {
				lists = append(lists, node)
			}
			return blackfriday.SkipChildren
		}
		return blackfriday.GoToNext
	})
	return lists
}

// 2 passes - first to find, second to remove
func filterDone(nodes []*blackfriday.Node) []*blackfriday.Node {
	nodesToUnlink := []*blackfriday.Node{}

	for _, node := range nodes {
		node.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
			if entering && node.Type == blackfriday.Item && node.FirstChild != nil {
				t := node.FirstChild.FirstChild
				if t != nil && isDone(string(t.Literal)) {
					log.Printf("dropping done item: %s", string(t.Literal))
					nodesToUnlink = append(nodesToUnlink, node)
					return blackfriday.SkipChildren
				}
			}
			return blackfriday.GoToNext
		})
	}
	for _, n := range nodesToUnlink {
		n.Unlink()
	}

	kept := []*blackfriday.Node{}
	for _, n := range nodes {
		if n.FirstChild != nil {
			kept = append(kept, n)
		}
	}
	return kept
}
