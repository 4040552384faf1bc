package toc

import (
	"fmt"
	"strings"
)

// Summary describes a search outcome for display. The query is trimmed
// first. A blank query yields "", an empty tree yields the no-results line,
// anything else reports the match count.
func Summary(query string, result FilterResult) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	if len(result.Tree) == 0 {
		return fmt.Sprintf("No results found for “%s”", query)
	}
	suffix := "s"
	if result.Count == 1 {
		suffix = ""
	}
	return fmt.Sprintf("Found %d result%s for “%s”", result.Count, suffix, query)
}
