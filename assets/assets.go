package assets

import (
	"embed"
	"io/fs"
)

// IntroLevel is the level loaded when no path is configured.
const IntroLevel = "levels/intro.tmx"

//go:embed all:levels
var assetFS embed.FS

// Levels exposes the embedded level files.
func Levels() fs.FS {
	return assetFS
}
