// Package docs generates the hub's markdown documentation from the compiled-in
// topic table. Each topic becomes one page; --all additionally produces a
// README.md index linking every page in table order. Pages embed
// marker-delimited snippets from the real contract and test sources when those
// files exist under the source directory, and degrade to a truncated fallback
// otherwise.
package docs
