package main

import (
	"fmt"
	"log/slog"

	"github.com/kevinxiao27/terrain-delta/config"
	"github.com/kevinxiao27/terrain-delta/editor"
	"github.com/kevinxiao27/terrain-delta/util"
	"github.com/sanity-io/litter"
)

func main() {
	litter.Config.HidePrivateFields = false
	cfg := config.Default()
	cfg.TilesPerSide = 6
	cfg.Brushes["dab"] = config.BrushPreset{Shape: "square", Size: 2, Strength: 1}

	cat, err := cfg.Catalog()
	if err != nil {
		panic(err)
	}
	b, err := cfg.Brush("dab")
	if err != nil {
		panic(err)
	}
	env := editor.Env{
		Terrain: cfg.NewTerrain(),
		Catalog: cat,
		Brush:   b,
		Logger:  util.NewDefaultLogger(slog.LevelDebug),
	}
	original := env.Terrain.Checksum()

	stroke := editor.NewPaintTerrain(env, editor.PaintMsg{X: 2, Y: 2, Texture: "sand", Priority: editor.PriorityHigh})
	if err := stroke.Do(); err != nil {
		panic(err)
	}
	next := editor.NewPaintTerrain(env, editor.PaintMsg{X: 3, Y: 2, Texture: "sand", Priority: editor.PriorityHigh})
	if err := next.Do(); err != nil {
		panic(err)
	}
	if err := next.MergeIntoPrevious(stroke); err != nil {
		panic(err)
	}
	painted := env.Terrain.Checksum()
	fmt.Println(stroke.Dump())

	if err := stroke.Undo(); err != nil {
		panic(err)
	}
	fmt.Printf("undo:  %016x (original %016x)\n", env.Terrain.Checksum(), original)

	if err := stroke.Redo(); err != nil {
		panic(err)
	}
	fmt.Printf("redo:  %016x (painted %016x)\n", env.Terrain.Checksum(), painted)

	if env.Terrain.Checksum() == painted {
		fmt.Println("Checksums match")
	} else {
		fmt.Println("Checksums differ")
	}

	dirty, _ := env.Terrain.TakeDirty()
	litter.Dump(dirty)
}
