// Package assets carries the versioned bestiary data asset. Numbers here
// are data edits, not code changes; the resolvers never hardcode them.
package assets

import _ "embed"

//go:embed species.yaml
var species []byte

//go:embed careers.yaml
var careers []byte

// Species returns the embedded species roster document.
func Species() []byte { return species }

// Careers returns the embedded career override document.
func Careers() []byte { return careers }
