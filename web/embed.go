package web

import "embed"

// FS contains the embedded static assets served under /static and copied by
// the exporter. Paths are rooted at "static".
//
//go:embed static
var FS embed.FS
