package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from a map.
const (
	WallLayer        = "walls"
	WallObjectGroup  = "Walls"
	SpawnObjectGroup = "PlayerSpawn"
)

// ErrTileShape is returned for maps whose tiles are not square.
var ErrTileShape = errors.New("arena: tiles must be square")

// LoadTMX parses a Tiled map into a Layout. Walls come from non-empty tiles
// of the "walls" layer and from every cell covered by an object in the
// "Walls" group. The first object of the "PlayerSpawn" group sets the spawn
// cell. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight || levelMap.TileWidth <= 0 {
		return Layout{}, fmt.Errorf("%s: %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrTileShape)
	}

	l := Layout{
		CellSize: levelMap.TileWidth,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
	}
	walls := make(map[Cell]struct{})

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer || len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				walls[Cell{X: x, Y: y}] = struct{}{}
			}
		}
		break
	}

	cs := float64(l.CellSize)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallObjectGroup:
			for _, o := range og.Objects {
				x0 := int(math.Floor(o.X / cs))
				y0 := int(math.Floor(o.Y / cs))
				x1 := int(math.Ceil((o.X+o.Width)/cs)) - 1
				y1 := int(math.Ceil((o.Y+o.Height)/cs)) - 1
				for y := y0; y <= y1; y++ {
					for x := x0; x <= x1; x++ {
						c := Cell{X: x, Y: y}
						if l.Contains(c) {
							walls[c] = struct{}{}
						}
					}
				}
			}
		case SpawnObjectGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				l.PlayerSpawn = Cell{X: int(math.Floor(o.X / cs)), Y: int(math.Floor(o.Y / cs))}
			}
		}
	}

	l.Walls = make([]Cell, 0, len(walls))
	for c := range walls {
		l.Walls = append(l.Walls, c)
	}
	// Row-major for deterministic entity creation order
	sort.Slice(l.Walls, func(i, j int) bool {
		if l.Walls[i].Y != l.Walls[j].Y {
			return l.Walls[i].Y < l.Walls[j].Y
		}
		return l.Walls[i].X < l.Walls[j].X
	})
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return l, nil
}
