package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kevinxiao27/terrain-delta/config"
	"github.com/kevinxiao27/terrain-delta/editor"
	"github.com/kevinxiao27/terrain-delta/util"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"
)

// Step is one line of a replay script.
type Step struct {
	Op       string  `yaml:"op"` // paint, undo, redo
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Texture  string  `yaml:"texture"`
	Priority string  `yaml:"priority"` // high or low, low when empty
	Brush    string  `yaml:"brush"`
	Merge    bool    `yaml:"merge"` // fold into the previous paint
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse script %s", path)
	}
	return &s, nil
}

// history is a plain undo/redo stack; the top of undo is the last command.
type history struct {
	undo []*editor.PaintTerrain
	redo []*editor.PaintTerrain
}

func (h *history) push(cmd *editor.PaintTerrain, merge bool) error {
	h.redo = nil
	if merge && len(h.undo) > 0 {
		return cmd.MergeIntoPrevious(h.undo[len(h.undo)-1])
	}
	h.undo = append(h.undo, cmd)
	return nil
}

func (h *history) stepBack() error {
	if len(h.undo) == 0 {
		return errors.New("nothing to undo")
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Undo(); err != nil {
		return err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	return nil
}

func (h *history) stepForward() error {
	if len(h.redo) == 0 {
		return errors.New("nothing to redo")
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Redo(); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	return nil
}

func run(cfgPath, scriptPath string) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	log := util.NewDefaultLogger(util.ParseLevel(cfg.LogLevel))
	sum, err := replay(cfg, script, log)
	if err != nil {
		return err
	}
	log.Info("done",
		"steps", len(script.Steps),
		"history", sum.History,
		"tiles_painted", sum.TilesPainted,
		"checksum", fmt.Sprintf("%016x", sum.Checksum))
	return nil
}

type summary struct {
	Checksum     uint64
	History      int
	TilesPainted float64
}

func replay(cfg *config.Config, script *Script, log util.Logger) (summary, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return summary{}, err
	}

	reg := prometheus.NewRegistry()
	env := editor.Env{
		Terrain: cfg.NewTerrain(),
		Catalog: cat,
		Logger:  log,
		Metrics: editor.NewMetrics(reg),
	}
	var h history

	for i, step := range script.Steps {
		ctx := util.WithDefaultArgs(context.Background(), "step", i, "op", step.Op)
		switch step.Op {
		case "paint":
			name := step.Brush
			if name == "" {
				name = "default"
			}
			if env.Brush, err = cfg.Brush(name); err != nil {
				return summary{}, errors.Wrapf(err, "step %d", i)
			}
			var prio editor.Priority
			if prio, err = editor.ParsePriority(step.Priority); err != nil {
				return summary{}, errors.Wrapf(err, "step %d", i)
			}
			cmd := editor.NewPaintTerrain(env, editor.PaintMsg{X: step.X, Y: step.Y, Texture: step.Texture, Priority: prio})
			if err := cmd.Do(); err != nil {
				log.WarnCtx(ctx, "step failed", "err", err)
				continue
			}
			err = h.push(cmd, step.Merge)
		case "undo":
			err = h.stepBack()
		case "redo":
			err = h.stepForward()
		default:
			err = errors.Errorf("unknown op %q", step.Op)
		}
		if err != nil {
			return summary{}, errors.Wrapf(err, "step %d", i)
		}
		log.DebugCtx(ctx, "replayed", "checksum", fmt.Sprintf("%016x", env.Terrain.Checksum()))
	}

	totals, err := metricTotals(reg)
	if err != nil {
		return summary{}, err
	}
	return summary{
		Checksum:     env.Terrain.Checksum(),
		History:      len(h.undo),
		TilesPainted: totals["terrain_delta_tiles_painted_total"],
	}, nil
}

// metricTotals sums every counter series per metric family.
func metricTotals(g prometheus.Gatherer) (map[string]float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "gather metrics")
	}
	totals := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		counters := util.Filter(mf.GetMetric(), func(m *dto.Metric) bool {
			return m.GetCounter() != nil
		})
		totals[mf.GetName()] = util.Reduce(counters, func(m *dto.Metric, sum float64) float64 {
			return sum + m.GetCounter().GetValue()
		}, 0)
	}
	return totals, nil
}

func main() {
	cfgPath := flag.String("config", "", "editor config YAML (defaults when empty)")
	scriptPath := flag.String("script", "", "replay script YAML")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -script steps.yaml [-config editor.yaml]")
		os.Exit(2)
	}
	if err := run(*cfgPath, *scriptPath); err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}
}
