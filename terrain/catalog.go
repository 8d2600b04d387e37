package terrain

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownTexture   = errors.New("terrain: unknown texture")
	ErrUnknownGroup     = errors.New("terrain: unknown texture group")
	ErrDuplicateTexture = errors.New("terrain: duplicate texture")
)

type Texture struct {
	Name      string `yaml:"name"`
	BaseColor uint32 `yaml:"base_color"`
}

type Group struct {
	Name     string    `yaml:"name"`
	Textures []Texture `yaml:"textures"`
}

// Catalog indexes the paintable textures. A texture may belong to several
// groups but its name identifies it everywhere.
type Catalog struct {
	groups   map[string][]*Texture
	textures map[string]*Texture
}

func NewCatalog(groups []Group) (*Catalog, error) {
	c := &Catalog{
		groups:   make(map[string][]*Texture, len(groups)),
		textures: make(map[string]*Texture),
	}

	for _, g := range groups {
		if g.Name == "" {
			return nil, errors.New("terrain: texture group without a name")
		}
		for i := range g.Textures {
			tex := g.Textures[i]
			if tex.Name == "" {
				return nil, errors.Errorf("terrain: group %q: texture without a name", g.Name)
			}
			known, ok := c.textures[tex.Name]
			if ok && *known != tex {
				return nil, errors.Wrapf(ErrDuplicateTexture, "%q in group %q", tex.Name, g.Name)
			}
			if !ok {
				known = &tex
				c.textures[tex.Name] = known
			}
			c.groups[g.Name] = append(c.groups[g.Name], known)
		}
		if _, ok := c.groups[g.Name]; !ok {
			c.groups[g.Name] = nil
		}
	}

	return c, nil
}

func (c *Catalog) FindTexture(name string) (*Texture, error) {
	tex, ok := c.textures[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTexture, "%q", name)
	}
	return tex, nil
}

// GroupNames lists group names alphabetically.
func (c *Catalog) GroupNames() []string {
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Textures returns the textures of a group sorted by name.
func (c *Catalog) Textures(group string) ([]Texture, error) {
	texs, ok := c.groups[group]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGroup, "%q", group)
	}
	out := make([]Texture, 0, len(texs))
	for _, tex := range texs {
		out = append(out, *tex)
	}
	slices.SortFunc(out, func(a, b Texture) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}
