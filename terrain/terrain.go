package terrain

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/kevinxiao27/terrain-delta/gridelta"
)

// Tile is the painted state of one terrain patch.
type Tile struct {
	Texture  string
	Priority int
}

// Terrain is a square grid of tiles stored row-major. It is the backing
// store for paint deltas.
type Terrain struct {
	side  int
	tiles []Tile
	dirty gridelta.Rect
}

var _ gridelta.Store[Tile] = (*Terrain)(nil)

func New(tilesPerSide int, baseTexture string) *Terrain {
	if tilesPerSide < 0 {
		tilesPerSide = 0
	}
	t := &Terrain{
		side:  tilesPerSide,
		tiles: make([]Tile, tilesPerSide*tilesPerSide),
	}
	for i := range t.tiles {
		t.tiles[i].Texture = baseTexture
	}
	return t
}

func (t *Terrain) TilesPerSide() int {
	return t.side
}

func (t *Terrain) InBounds(x, y int) bool {
	return t.Extent().Contains(x, y)
}

// Extent is the rectangle covered by the terrain.
func (t *Terrain) Extent() gridelta.Rect {
	return gridelta.Rect{X1: t.side, Y1: t.side}
}

// Tile returns the tile at (x, y), or false outside the terrain.
func (t *Terrain) Tile(x, y int) (*Tile, bool) {
	if !t.InBounds(x, y) {
		return nil, false
	}
	return &t.tiles[y*t.side+x], true
}

func (t *Terrain) ReadCell(x, y int) Tile {
	return *t.mustTile(x, y)
}

func (t *Terrain) WriteCell(x, y int, v Tile) {
	*t.mustTile(x, y) = v
}

func (t *Terrain) mustTile(x, y int) *Tile {
	tile, ok := t.Tile(x, y)
	if !ok {
		panic(fmt.Sprintf("terrain: tile (%d,%d) outside %dx%d terrain", x, y, t.side, t.side))
	}
	return tile
}

// MakeDirty records that r needs its render data rebuilt.
func (t *Terrain) MakeDirty(r gridelta.Rect) {
	r = r.Intersect(t.Extent())
	t.dirty = t.dirty.Union(r)
}

// TakeDirty returns the accumulated dirty region and clears it.
func (t *Terrain) TakeDirty() (gridelta.Rect, bool) {
	r := t.dirty
	t.dirty = gridelta.Rect{}
	return r, !r.Empty()
}

// Checksum hashes every tile in row-major order.
func (t *Terrain) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, tile := range t.tiles {
		_, _ = h.WriteString(tile.Texture)
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(tile.Priority)))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
