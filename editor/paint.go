package editor

import (
	"strings"

	"github.com/kevinxiao27/terrain-delta/brush"
	"github.com/kevinxiao27/terrain-delta/gridelta"
	"github.com/kevinxiao27/terrain-delta/terrain"
	"github.com/kevinxiao27/terrain-delta/util"
	"github.com/pkg/errors"
)

var (
	ErrNotDone     = errors.New("editor: command has not been done")
	ErrAlreadyDone = errors.New("editor: command already done")
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityHigh
)

// ParsePriority accepts "high" or "low" in any case; empty means low.
func ParsePriority(name string) (Priority, error) {
	switch strings.ToLower(name) {
	case "low", "":
		return PriorityLow, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, errors.Errorf("editor: unknown priority %q", name)
}

func (p Priority) scale() int {
	return util.Choose(p == PriorityHigh, 1, -1)
}

// Env holds everything a paint command works against.
type Env struct {
	Terrain *terrain.Terrain
	Catalog *terrain.Catalog
	Brush   *brush.Brush
	Logger  util.Logger
	Metrics *Metrics
}

// PaintMsg is one brush dab. X and Y are in tile units.
type PaintMsg struct {
	X, Y     float64
	Texture  string
	Priority Priority
}

// PaintTerrain paints the brush footprint with one texture and can undo,
// redo and absorb a following dab of the same stroke.
type PaintTerrain struct {
	env    Env
	msg    PaintMsg
	delta  *gridelta.Delta[terrain.Tile]
	bounds gridelta.Rect
	done   bool
}

func NewPaintTerrain(env Env, msg PaintMsg) *PaintTerrain {
	if env.Logger == nil {
		env.Logger = util.NopLogger()
	}
	return &PaintTerrain{
		env:   env,
		msg:   msg,
		delta: gridelta.New[terrain.Tile](env.Terrain),
	}
}

func (c *PaintTerrain) Do() error {
	if c.done {
		return ErrAlreadyDone
	}

	tex, err := c.env.Catalog.FindTexture(c.msg.Texture)
	if err != nil {
		c.env.Logger.Warn("paint skipped", "texture", c.msg.Texture, "err", err)
		return errors.Wrap(err, "paint terrain")
	}

	b := c.env.Brush
	b.SetCentre(c.msg.X, c.msg.Y)
	x0, y0 := b.BottomLeft()

	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			if b.Solid(dx, dy) {
				c.paintTile(x0+dx, y0+dy, tex.Name)
			}
		}
	}

	c.bounds = gridelta.Rect{X0: x0, Y0: y0, X1: x0 + b.W, Y1: y0 + b.H}
	c.done = true
	c.makeDirty()

	c.env.Metrics.command("do")
	c.env.Metrics.painted(c.delta.Len())
	c.env.Logger.Debug("paint",
		"texture", tex.Name,
		"x0", x0, "y0", y0,
		"tiles", c.delta.Len())
	return nil
}

func (c *PaintTerrain) paintTile(x, y int, tex string) {
	t := c.env.Terrain
	if !t.InBounds(x, y) {
		return
	}

	// new tile wins over (high) or loses to (low) all eight neighbours
	scale := c.msg.Priority.scale()
	greatest := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if tile, ok := t.Tile(nx, ny); ok {
				greatest = util.Max(greatest, tile.Priority*scale)
			}
		}
	}

	c.delta.Set(x, y, terrain.Tile{Texture: tex, Priority: (greatest + 1) * scale})
}

func (c *PaintTerrain) Undo() error {
	if !c.done {
		return ErrNotDone
	}
	if err := c.delta.Undo(); err != nil {
		return errors.Wrap(err, "undo paint terrain")
	}
	c.makeDirty()
	c.env.Metrics.command("undo")
	return nil
}

func (c *PaintTerrain) Redo() error {
	if !c.done {
		return ErrNotDone
	}
	if err := c.delta.Redo(); err != nil {
		return errors.Wrap(err, "redo paint terrain")
	}
	c.makeDirty()
	c.env.Metrics.command("redo")
	return nil
}

// MergeIntoPrevious folds c into prev so one undo reverts both dabs.
// c must be discarded afterwards.
func (c *PaintTerrain) MergeIntoPrevious(prev *PaintTerrain) error {
	if !c.done || !prev.done {
		return ErrNotDone
	}

	overlap := len(gridelta.Compare(prev.delta, c.delta).Both)
	if err := prev.delta.OverlayWith(c.delta); err != nil {
		return errors.Wrap(err, "merge paint terrain")
	}
	prev.bounds = prev.bounds.Union(c.bounds)

	c.env.Metrics.command("merge")
	c.env.Logger.Debug("merged paint",
		"tiles", prev.delta.Len(),
		"overlap", overlap)
	return nil
}

func (c *PaintTerrain) makeDirty() {
	c.env.Terrain.MakeDirty(c.bounds)
}

// Bounds is the brush area covered by this command, including merged dabs.
func (c *PaintTerrain) Bounds() gridelta.Rect {
	return c.bounds
}

// Tiles returns the number of distinct tiles this command changed.
func (c *PaintTerrain) Tiles() int {
	return c.delta.Len()
}

func (c *PaintTerrain) Dump() string {
	return c.delta.Dump()
}
