// Package catalog holds the read-only set of photography checklists served
// by the web viewer. A Catalog is built once at startup and never modified,
// so it is safe to share between request handlers.
package catalog

import (
	"slices"
	"sort"

	"github.com/Firstyear/checklists/internal/checklist"
)

// Catalog maps checklist names to their ordered steps.
type Catalog struct {
	lists map[string][]string
	names []string
}

// New builds a catalog from the given lists. Step slices are copied.
func New(lists map[string][]string) *Catalog {
	c := &Catalog{lists: make(map[string][]string, len(lists))}
	for name, steps := range lists {
		c.lists[name] = slices.Clone(steps)
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Names returns the checklist names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Get returns the steps of the named checklist.
func (c *Catalog) Get(name string) ([]string, bool) {
	steps, ok := c.lists[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(steps), true
}

// Len returns the number of checklists.
func (c *Catalog) Len() int { return len(c.names) }

// Checklist returns the named list as an unchecked checklist, one item per
// step, so it can be written out and walked with a session.
func (c *Catalog) Checklist(name string) (*checklist.Checklist, bool) {
	steps, ok := c.lists[name]
	if !ok {
		return nil, false
	}
	cl := &checklist.Checklist{Name: name, Items: make([]checklist.Item, 0, len(steps))}
	for _, s := range steps {
		cl.Items = append(cl.Items, checklist.Item{Name: s, Description: s})
	}
	return cl, true
}

var outdoorFlash = []string{
	"WB to daylight/shade",
	"WB based on grey card",
	"Shutter based on flash sync (180 or 250)",
	"Control BG light no flash, then add flash",
	"Only ISO/F control flash, not shutter",
	"Use flash manual (not TTL)",
	"UV filter or CPL filter",
	"Look for potential reflections",
}

// Photography returns the built-in photography checklists.
func Photography() *Catalog {
	return New(map[string][]string{
		"poleshow": {
			"IBIS off",
			"50-140 OIS on",
			"Aperture to f/3.6 or higher",
			"ISO to 6400",
			"Shutter to 1/250 or faster (use mode T)",
			"White Balance based on stage neutral (grey card)",
			"White Balance alt - incandesent or fluro 2",
			"AF to C",
			"AF track to 6",
			"AF to centre points (phase)",
			"AF set in both orientations (X-H1)",
			"Focus center or above centre",
			"UV filter",
			"Land scape often better than portrait",
			"Synchronise clocks",
			"Use body custom 2 (pole) (NR + Sharp)",
			"Shoot wide",
			"Shoot angle from low",
		},
		"outdoor flash": append([]string{"IBIS off"}, outdoorFlash...),
		"outdoor reflector": {
			"IBIS off",
			"White reflector bright sun/direct",
			"Silver/Gold for shade or spotlight",
			"WB to ambient no reflector",
			"CPL or UV filter",
		},
		"outdoor pole": slices.Concat(
			[]string{"IBIS off"},
			outdoorFlash,
			[]string{
				"clear BG behind pole (simple-exlusion)",
				"Avoid floor (low angle)",
				"50mm or higher length",
				"shoot wide full BG + pole",
				"Flash high or low to sides (fill or spotlight)",
				"Flash opposite side to sun",
				"Reflector could be used",
			},
		),
		"food restaurant": {
			"WB is critically important",
			"F2.5 or greater",
			"IBIS on",
			"ISO auto 2 (6400)",
			"Low and High angles (never eye level)",
			"Rotate plates multiple times for possible angles",
			"Swirl wine to light sources",
			"Use available reflections to create effects (IE bottles)",
			"Low angle room shots",
		},
	})
}
