// Package site carries the default website source (content, layouts, data and
// static assets) compiled into the binary.
package site

import "embed"

// FS is rooted at the site source: content/, layouts/, data/ and static/.
//
//go:embed content layouts data static
var FS embed.FS
