package source

import (
	"github.com/itsmostafa/tocview/internal/toc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown builds a dataset from the headings of a markdown document.
// Each heading becomes a page nested under the closest preceding heading of
// a lower depth, plus an anchor pointing at it. name is used as the page URL.
//
// Levels are nesting depths rather than heading depths, so a document whose
// outermost headings are h2 still starts at level 0.
func FromMarkdown(src []byte, name string) *toc.TOCData {
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	doc := md.Parser().Parse(text.NewReader(src))

	type heading struct {
		id    string
		title string
		depth int
	}
	var headings []heading

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		// The auto heading id option gives every heading a unique id.
		v, _ := h.AttributeString("id")
		id, _ := v.([]byte)
		headings = append(headings, heading{id: string(id), title: string(h.Text(src)), depth: h.Level})
		return ast.WalkSkipChildren, nil
	})

	data := &toc.TOCData{
		Entities: toc.Entities{
			Pages:   make(map[string]toc.Page, len(headings)),
			Anchors: make(map[string]toc.Anchor, len(headings)),
		},
		TopLevelIDs: []string{},
	}

	type stackEntry struct {
		id    string
		depth int
	}
	var stack []stackEntry
	var order []string
	pages := make(map[string]*toc.Page, len(headings))

	for _, h := range headings {
		// Pop until the top of the stack is a shallower heading.
		for len(stack) > 0 && stack[len(stack)-1].depth >= h.depth {
			stack = stack[:len(stack)-1]
		}

		page := &toc.Page{
			ID:    h.id,
			Title: h.title,
			URL:   name + "#" + h.id,
			Level: len(stack),
		}
		if len(stack) == 0 {
			data.TopLevelIDs = append(data.TopLevelIDs, h.id)
		} else {
			parent := pages[stack[len(stack)-1].id]
			page.ParentID = parent.ID
			parent.Pages = append(parent.Pages, h.id)
		}
		pages[h.id] = page
		order = append(order, h.id)
		stack = append(stack, stackEntry{id: h.id, depth: h.depth})

		data.Entities.Anchors[h.id] = toc.Anchor{
			ID:     h.id,
			Title:  h.title,
			URL:    name,
			Anchor: "#" + h.id,
			Level:  page.Level,
		}
	}

	for _, id := range order {
		data.Entities.Pages[id] = *pages[id]
	}
	return data
}
