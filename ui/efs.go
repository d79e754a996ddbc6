// Package ui embeds the HTML templates served by the web application.
package ui

import "embed"

//go:embed templates
var Files embed.FS
