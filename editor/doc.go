// Package editor is a Bubble Tea component that renders and edits a
// buffer.Buffer.
//
// Each frame highlights the document from its first line down to the last
// visible one through a highlight.Composite and renders every visible line
// as the styled runs of its annotated substring. Search runs in a prompt
// mode: typing refines the query, arrows step between matches and escape
// restores the location the search started from.
package editor
