// Package gamedata provides the embedded monster spawn table and sprite sheet.
package gamedata

import "embed"

// dataFS holds monsters.json and sprites.json.
//
//go:embed *.json
var dataFS embed.FS
