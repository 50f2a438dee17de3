// Package navgrid finds walking routes across the warehouse floor.
package navgrid

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/parcelrush/blackfriday/shared/gamemath"
)

// Grid represents the walkable cells of an area
type Grid struct {
	Width, Depth int
	CellSize     float64
	Area         gamemath.Rect
	Nodes        [][]*Node // [z][x]
}

// Node is a single cell in the grid.
// Implements astar.Pather
type Node struct {
	X, Z     int
	Walkable bool
	Grid     *Grid
}

var dirs = [...]struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes. Diagonals need both
// cardinal neighbours free so routes never cut a corner over a hole.
func (n *Node) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(dirs))
	for _, d := range dirs {
		if !n.Grid.walkable(n.X+d.dx, n.Z+d.dz) {
			continue
		}
		if d.dx != 0 && d.dz != 0 && (!n.Grid.walkable(n.X+d.dx, n.Z) || !n.Grid.walkable(n.X, n.Z+d.dz)) {
			continue
		}
		neighbors = append(neighbors, n.Grid.Nodes[n.Z+d.dz][n.X+d.dx])
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns the straight-line distance in cells
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Z-n.Z))
}

// New builds a grid over area. A cell is walkable when walkable reports
// true for its centre.
func New(area gamemath.Rect, cellSize float64, walkable func(gamemath.Vec3) bool) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Grid{
		Width:    max(1, int(math.Ceil(area.Width()/cellSize))),
		Depth:    max(1, int(math.Ceil(area.Depth()/cellSize))),
		CellSize: cellSize,
		Area:     area,
	}
	g.Nodes = make([][]*Node, g.Depth)
	for z := 0; z < g.Depth; z++ {
		g.Nodes[z] = make([]*Node, g.Width)
		for x := 0; x < g.Width; x++ {
			g.Nodes[z][x] = &Node{
				X:        x,
				Z:        z,
				Walkable: walkable(g.CellCenter(x, z)),
				Grid:     g,
			}
		}
	}
	return g
}

func (g *Grid) walkable(x, z int) bool {
	return x >= 0 && x < g.Width && z >= 0 && z < g.Depth && g.Nodes[z][x].Walkable
}

// Cell returns the cell containing p, clamped to the grid.
func (g *Grid) Cell(p gamemath.Vec3) (x, z int) {
	x = clampInt(int((p.X-g.Area.MinX)/g.CellSize), 0, g.Width-1)
	z = clampInt(int((p.Z-g.Area.MinZ)/g.CellSize), 0, g.Depth-1)
	return x, z
}

// CellCenter converts grid coordinates to the world point at the cell centre
func (g *Grid) CellCenter(x, z int) gamemath.Vec3 {
	return gamemath.Vec3{
		X: g.Area.MinX + (float64(x)+0.5)*g.CellSize,
		Z: g.Area.MinZ + (float64(z)+0.5)*g.CellSize,
	}
}

// FindPath returns waypoints from the cell after from's up to goal, ending
// exactly on goal when goal's cell is walkable. It returns nil when the
// two cells are not connected.
func (g *Grid) FindPath(from, goal gamemath.Vec3) []gamemath.Vec3 {
	startNode := g.nearestWalkable(g.Cell(from))
	goalNode := g.nearestWalkable(g.Cell(goal))
	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []gamemath.Vec3{goal}
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}
	// Order start to goal whichever way the search reports it.
	if path[0] != astar.Pather(startNode) {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	waypoints := make([]gamemath.Vec3, 0, len(path)-1)
	for _, p := range path[1:] {
		n := p.(*Node)
		waypoints = append(waypoints, g.CellCenter(n.X, n.Z))
	}
	if gx, gz := g.Cell(goal); goalNode.X == gx && goalNode.Z == gz {
		waypoints[len(waypoints)-1] = goal
	}
	return waypoints
}

// nearestWalkable finds the nearest walkable node, searching outward in rings
func (g *Grid) nearestWalkable(x, z int) *Node {
	if g.walkable(x, z) {
		return g.Nodes[z][x]
	}
	for radius := 1; radius < max(g.Width, g.Depth); radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.walkable(x+dx, z+dz) {
					return g.Nodes[z+dz][x+dx]
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
