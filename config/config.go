package config

import (
	"os"

	"github.com/kevinxiao27/terrain-delta/brush"
	"github.com/kevinxiao27/terrain-delta/terrain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// BrushPreset is a named brush the editor can switch to.
type BrushPreset struct {
	Shape    string  `yaml:"shape"`
	Size     int     `yaml:"size"`
	Strength float32 `yaml:"strength"`
}

type Config struct {
	TilesPerSide int                    `yaml:"tiles_per_side"`
	BaseTexture  string                 `yaml:"base_texture"`
	LogLevel     string                 `yaml:"log_level"`
	Groups       []terrain.Group        `yaml:"groups"`
	Brushes      map[string]BrushPreset `yaml:"brushes"`
}

func Default() *Config {
	return &Config{
		TilesPerSide: 64,
		BaseTexture:  "grass",
		LogLevel:     "info",
		Groups: []terrain.Group{
			{Name: "temperate", Textures: []terrain.Texture{
				{Name: "grass", BaseColor: 0x3c7820},
				{Name: "dirt", BaseColor: 0x6b4f2a},
				{Name: "rock", BaseColor: 0x7a7a7a},
			}},
			{Name: "desert", Textures: []terrain.Texture{
				{Name: "sand", BaseColor: 0xd8c28a},
			}},
		},
		Brushes: map[string]BrushPreset{
			"default": {Shape: "circle", Size: 4, Strength: 1},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse overlays data on Default and validates the result. Lists in data
// replace the defaults; brush presets are added to the default ones.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TilesPerSide <= 0 {
		return errors.Errorf("tiles_per_side must be positive, got %d", c.TilesPerSide)
	}
	cat, err := c.Catalog()
	if err != nil {
		return err
	}
	if _, err := cat.FindTexture(c.BaseTexture); err != nil {
		return errors.Wrap(err, "base_texture")
	}
	if len(c.Brushes) == 0 {
		return errors.New("at least one brush preset is required")
	}
	for name, p := range c.Brushes {
		if _, err := brush.ParseShape(p.Shape); err != nil {
			return errors.Wrapf(err, "brush %q", name)
		}
		if p.Size <= 0 {
			return errors.Errorf("brush %q: size must be positive, got %d", name, p.Size)
		}
		if p.Strength < 0 || p.Strength > 1 {
			return errors.Errorf("brush %q: strength must be within [0, 1], got %v", name, p.Strength)
		}
	}
	return nil
}

func (c *Config) Catalog() (*terrain.Catalog, error) {
	return terrain.NewCatalog(c.Groups)
}

func (c *Config) NewTerrain() *terrain.Terrain {
	return terrain.New(c.TilesPerSide, c.BaseTexture)
}

func (c *Config) Brush(name string) (*brush.Brush, error) {
	p, ok := c.Brushes[name]
	if !ok {
		return nil, errors.Errorf("unknown brush preset %q", name)
	}
	shape, err := brush.ParseShape(p.Shape)
	if err != nil {
		return nil, err
	}
	return brush.New(shape, p.Size, p.Strength), nil
}
