// Package ui holds the embedded HTML templates for the server-rendered
// pages.
package ui

import "embed"

//go:embed html
var Files embed.FS
