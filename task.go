package main

import "strings"

var (
	doneMarkers = []string{"[x]", "[X]", "[C]", "[c]"}
	statuses    = map[string]string{" ": "Todo", "i": "In progress", "x": "Done", "p": "Postponed", "c": "Cancelled"}
)

func isDone(content string) bool {
	for _, d := range doneMarkers {
		if strings.Contains(content, d) {
			return true
		}
	}
	return false
}
