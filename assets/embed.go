package assets

import (
	"embed"
)

//go:embed config.yaml
var FS embed.FS

// DefaultConfig returns the commented config template written by
// `duel config init`.
func DefaultConfig() ([]byte, error) {
	return FS.ReadFile("config.yaml")
}
