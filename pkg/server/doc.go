// Package server implements the pageviz preview server.
//
// The server holds one page and its box list and re-renders them on
// every request, so edits to styling options show up with a browser
// refresh. It exposes two endpoints:
//
//	GET /render?format=svg|png|jpeg&scale=2
//	GET /healthz
//
// The default format is svg. The scale query parameter overrides the
// configured render scale for that request only.
package server
