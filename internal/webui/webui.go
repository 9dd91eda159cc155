// Package webui embeds the cursor preview page served by xcur serve.
package webui

import "embed"

//go:embed static/*
var staticFS embed.FS

// Index returns the preview page.
func Index() []byte {
	b, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		// embedded at build time
		panic(err)
	}
	return b
}
