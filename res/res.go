// Package res embeds the HTML templates.
package res

import "embed"

//go:embed templates/*
var Templates embed.FS
