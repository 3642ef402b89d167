// Package server implements the MCP (Model Context Protocol) server that
// exposes the nine-slice tools over stdin/stdout JSON-RPC.
//
// The server is the interactive controller around the stateless slicing
// core: it caches decoded images and keeps one editing session per loaded
// image, consisting of the current geometry and a bounded linear undo/redo
// history of margins snapshots. Margin edits are clamped by the core and the
// applied values are reported back, so a client can drive a drag gesture
// through slice_set_margin without ever receiving a range error.
//
// Exports delegate to the export package; the server adds no pixel logic of
// its own.
package server
