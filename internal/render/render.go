// Package render prints table-of-contents trees to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/tocview/internal/toc"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for markers and muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// activeStyle for the active node
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160"))

	// matchStyle for titles matching the search query
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// anchorStyle for in-page anchors under the active node
	anchorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	// boxStyle for the search summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

const (
	collapsedMarker = "▶"
	expandedMarker  = "▼"
	indentWidth     = 2
)

// Tree writes the visible part of nodes. Children of collapsed nodes are
// hidden and anchors are listed only under the active node. Titles
// containing query are highlighted.
func Tree(w io.Writer, nodes []*toc.Node, view *toc.View, query string) {
	if view == nil {
		view = &toc.View{}
	}
	q := toc.Normalize(strings.TrimSpace(query))

	var walk func([]*toc.Node)
	walk = func(children []*toc.Node) {
		for _, node := range children {
			expanded := view.Expanded(node)
			fmt.Fprintln(w, formatNode(node, view, q, expanded))
			if !expanded {
				continue
			}
			walk(node.Children)
			if view.AnchorsVisible(node) {
				for _, a := range node.Anchors {
					fmt.Fprintln(w, formatAnchor(node, a))
				}
			}
		}
	}
	walk(nodes)
}

func formatNode(node *toc.Node, view *toc.View, q string, expanded bool) string {
	indent := strings.Repeat(" ", node.Level*indentWidth)

	marker := " "
	if node.HasChildren() {
		marker = collapsedMarker
		if expanded {
			marker = expandedMarker
		}
	}

	title := node.Title
	switch {
	case node.ID == view.ActiveID():
		title = activeStyle.Render(title)
	case q != "" && strings.Contains(toc.Normalize(node.Title), q):
		title = matchStyle.Render(title)
	}

	return fmt.Sprintf("%s%s %s", indent, dimStyle.Render(marker), title)
}

func formatAnchor(node *toc.Node, a toc.Anchor) string {
	indent := strings.Repeat(" ", (node.Level+1)*indentWidth)
	return fmt.Sprintf("%s%s %s %s", indent, dimStyle.Render("#"), anchorStyle.Render(a.Title), dimStyle.Render(a.Href()))
}

// Summary writes the search summary box. Nothing is written for a blank query.
func Summary(w io.Writer, query string, result toc.FilterResult) {
	line := toc.Summary(query, result)
	if line == "" {
		return
	}
	fmt.Fprintln(w, boxStyle.Render(titleStyle.Render("Search")+"\n"+line))
}

// Stats writes a one-line description of a tree.
func Stats(w io.Writer, nodes []*toc.Node) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d top-level, %d total", len(nodes), toc.Len(nodes))))
}
