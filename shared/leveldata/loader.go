package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/parcelrush/blackfriday/shared/gamemath"
)

// Object group names read from the map.
const (
	GroupGround        = "Ground"
	GroupShippingAreas = "ShippingAreas"
	GroupTrucks        = "Trucks"
	GroupPlayerSpawn   = "PlayerSpawn"
)

var (
	ErrNoGround    = errors.New("map has no ground rectangle")
	ErrBadFacing   = errors.New("unknown truck facing")
	ErrMissingName = errors.New("object is missing its agent property")
)

// LoadWarehouse parses a TMX file into a Warehouse. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadWarehouse(fsys fs.FS, tmxPath string) (*Warehouse, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	rect := func(o *tiled.Object) gamemath.Rect {
		return gamemath.RectFromSize(o.X/tileW, o.Y/tileH, o.Width/tileW, o.Height/tileH)
	}

	w := &Warehouse{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	hasGround := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			if len(og.Objects) > 0 {
				w.Ground = rect(og.Objects[0])
				hasGround = true
			}
		case GroupShippingAreas:
			for _, o := range og.Objects {
				agent := o.Properties.GetString("agent")
				if agent == "" {
					return nil, fmt.Errorf("%s object %d: %w", og.Name, o.ID, ErrMissingName)
				}
				w.Zones = append(w.Zones, Zone{Agent: agent, Bounds: rect(o)})
			}
		case GroupTrucks:
			for _, o := range og.Objects {
				agent := o.Properties.GetString("agent")
				if agent == "" {
					return nil, fmt.Errorf("%s object %d: %w", og.Name, o.ID, ErrMissingName)
				}
				facing, err := ParseFacing(o.Properties.GetString("facing"))
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", og.Name, o.ID, err)
				}
				w.Trucks = append(w.Trucks, TruckSpawn{
					Agent:  agent,
					X:      o.X / tileW,
					Z:      o.Y / tileH,
					Facing: facing,
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				w.PlayerSpawns = append(w.PlayerSpawns, SpawnPoint{X: o.X / tileW, Z: o.Y / tileH})
			}
		}
	}

	if !hasGround {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoGround)
	}

	// Stable zone order regardless of how the map was edited
	sort.SliceStable(w.Zones, func(i, j int) bool {
		return strings.ToLower(w.Zones[i].Agent) < strings.ToLower(w.Zones[j].Agent)
	})

	return w, nil
}

// ParseFacing converts a compass direction to a unit vector on the ground
// plane. North is -Z.
func ParseFacing(s string) (gamemath.Vec3, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return gamemath.V3(0, 0, -1), nil
	case "south":
		return gamemath.V3(0, 0, 1), nil
	case "east":
		return gamemath.V3(1, 0, 0), nil
	case "west":
		return gamemath.V3(-1, 0, 0), nil
	}
	return gamemath.Zero, fmt.Errorf("%w: %q", ErrBadFacing, s)
}

// Floors returns every surface a parcel can land on, ground first.
func (w *Warehouse) Floors() []gamemath.Rect {
	floors := make([]gamemath.Rect, 0, len(w.Zones)+1)
	floors = append(floors, w.Ground)
	for _, z := range w.Zones {
		floors = append(floors, z.Bounds)
	}
	return floors
}

// Bounds is the whole map.
func (w *Warehouse) Bounds() gamemath.Rect {
	return gamemath.RectFromSize(0, 0, w.Width, w.Depth)
}
