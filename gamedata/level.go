package gamedata

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/marisvali/counters/world"
)

// Level is a catalog of counters. Counters in the same color group match each
// other even if they look different, e.g. "1/2", "2/4" and "0.5".
type Level struct {
	Name   string       `yaml:"Name"`
	Groups []ColorGroup `yaml:"Groups"`
}

type ColorGroup struct {
	Name string `yaml:"Name"`
	// Color is written as #rrggbb.
	Color    string    `yaml:"Color"`
	Counters []Counter `yaml:"Counters"`
}

type Counter struct {
	// Label is the short text drawn on the counter.
	Label string `yaml:"Label"`
	// Texture is an optional png drawn on the counter instead of the label.
	Texture     string `yaml:"Texture"`
	Description string `yaml:"Description"`
}

// Visual is one entry of the catalog, with everything needed to draw it.
type Visual struct {
	Counter
	Kind  int64
	Group string
	Color color.NRGBA
}

func LoadLevel(fsys FS, path string) (l Level, err error) {
	if err = LoadYAML(fsys, path, &l); err != nil {
		return
	}
	if err = l.Validate(); err != nil {
		err = fmt.Errorf("invalid level %s: %w", path, err)
	}
	return
}

func (l *Level) Validate() error {
	var errs []error
	for i, g := range l.Groups {
		if len(g.Counters) == 0 {
			errs = append(errs, fmt.Errorf("group %d (%s) has no counters",
				i, g.Name))
		}
		if _, err := ParseColor(g.Color); err != nil {
			errs = append(errs, fmt.Errorf("group %d (%s): %w", i, g.Name,
				err))
		}
	}
	if err := world.ValidateCatalog(l.Catalog()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Visuals lists the counters of all groups. The index of a counter in the
// list is its visual, the index of its group is its kind.
func (l *Level) Visuals() (visuals []Visual) {
	for kind, g := range l.Groups {
		// Validate reports bad colors, draw them black.
		c, _ := ParseColor(g.Color)
		for _, counter := range g.Counters {
			visuals = append(visuals, Visual{
				Counter: counter,
				Kind:    int64(kind),
				Group:   g.Name,
				Color:   c,
			})
		}
	}
	return
}

func (l *Level) Catalog() (catalog []world.Asset) {
	for i, v := range l.Visuals() {
		catalog = append(catalog, world.Asset{Kind: v.Kind, Visual: int64(i)})
	}
	return
}

// ParseColor parses colors written as #rrggbb.
func ParseColor(s string) (c color.NRGBA, err error) {
	c.A = 255
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q, expected #rrggbb", s)
	}
	rgb, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.R = uint8(rgb >> 16)
	c.G = uint8(rgb >> 8)
	c.B = uint8(rgb)
	return c, nil
}
