// Package level reads Tiled maps into plain spawn data.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

var ErrNoPlayerSpawn = errors.New("level: no player spawn")

// Layer and object group names the loader understands.
const (
	LayerGround      = "ground"
	GroupWalls       = "Walls"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupNPCs        = "NPCs"
	GroupItems       = "Items"
	GroupPushables   = "Pushables"
	dialogLineSep    = "|"
	propDialog       = "dialog"
	propExhausted    = "exhausted"
	propItemName     = "name"
)

type Rect struct {
	X, Y, W, H float64
}

type NPCSpawn struct {
	Rect
	Name      string
	Lines     []string
	Exhausted string
}

type ItemSpawn struct {
	Rect
	Name string
}

type Level struct {
	Name   string
	Width  int // pixels
	Height int

	// Ground holds one rect per horizontal run of ground tiles.
	Ground      []Rect
	Walls       []Rect
	PlayerSpawn Rect
	NPCs        []NPCSpawn
	Items       []ItemSpawn
	Pushables   []Rect
}

// Load parses the TMX file at path inside fsys.
func Load(fsys fs.FS, path string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}

	lvl := &Level{
		Name:   path,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	spawnFound := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				lvl.Walls = append(lvl.Walls, rectOf(o))
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				lvl.PlayerSpawn = rectOf(og.Objects[0])
				spawnFound = true
			}
		case GroupNPCs:
			for _, o := range og.Objects {
				lvl.NPCs = append(lvl.NPCs, NPCSpawn{
					Rect:      rectOf(o),
					Name:      o.Name,
					Lines:     splitLines(o.Properties.GetString(propDialog)),
					Exhausted: o.Properties.GetString(propExhausted),
				})
			}
		case GroupItems:
			for _, o := range og.Objects {
				name := o.Properties.GetString(propItemName)
				if name == "" {
					name = o.Name
				}
				lvl.Items = append(lvl.Items, ItemSpawn{Rect: rectOf(o), Name: name})
			}
		case GroupPushables:
			for _, o := range og.Objects {
				lvl.Pushables = append(lvl.Pushables, rectOf(o))
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load level %s: %w", path, ErrNoPlayerSpawn)
	}

	for _, layer := range m.Layers {
		if layer.Name != LayerGround {
			continue
		}
		lvl.Ground = groundRuns(layer, m.Width, m.Height, float64(m.TileWidth), float64(m.TileHeight))
		break
	}

	return lvl, nil
}

// groundRuns merges each row's consecutive tiles into one rect so bodies
// sliding along the floor never catch on tile seams.
func groundRuns(layer *tiled.Layer, width, height int, tileW, tileH float64) []Rect {
	var out []Rect
	for y := 0; y < height; y++ {
		start := -1
		for x := 0; x <= width; x++ {
			solid := x < width && !layer.Tiles[y*width+x].IsNil()
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				out = append(out, Rect{
					X: float64(start) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-start) * tileW,
					H: tileH,
				})
				start = -1
			}
		}
	}
	return out
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, dialogLineSep)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
