// Package toc turns a flat, id-indexed table-of-contents dataset into a
// navigable tree and filters that tree against a search query.
//
// The three core operations are pure and safe for concurrent use:
//
//   - BuildTree materializes the tree from TOCData, following TopLevelIDs
//     for root order and each page's Pages list for child order.
//   - FilterTree prunes a tree to nodes whose title matches a query or that
//     lead to a matching descendant, and counts the self-matching nodes.
//   - Normalize lowercases text and strips diacritical marks for matching.
//
// Expansion and activation are modelled by View, a small state value meant
// to be driven by a presentation layer.
package toc
