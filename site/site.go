// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package site embeds the browser page that drives the API: pick a route
// from GET /routes, fill its parameters and render the JSON as a table.
package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// FS returns the page assets (index.html, app.js, style.css).
func FS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err) // static is embedded at build time
	}
	return sub
}

// Index serves the page itself.
func Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, FS(), "index.html")
}

// Assets serves files under /static/.
func Assets() http.Handler {
	return http.StripPrefix("/static", http.FileServerFS(FS()))
}

// Register mounts the page at GET / (exact) and its assets at GET /static/.
func Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", Index)
	mux.Handle("GET /static/", Assets())
}
