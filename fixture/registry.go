package fixture

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildFunc populates a fresh workbook with one fixture's layout.
// The file already contains a single default sheet; the builder renames it
// and writes headers, data cells, and column widths.
type BuildFunc func(f *excelize.File, sm *StyleManager, opts Options) error

// Options controls optional builder behavior shared by all fixtures.
type Options struct {
	// Sample fills the blank data regions with generated rows instead of
	// leaving them empty. Headers, styles, and widths are unaffected.
	Sample bool

	// SampleRows caps how many sample rows each fixture writes.
	// Zero means fill the fixture's whole data region.
	SampleRows int
}

// Fixture describes one generated template file.
type Fixture struct {
	ID       string // name used on the command line, e.g. "employee-roster"
	Filename string // output filename, e.g. "employee-roster.xlsx"
	Sheet    string // sheet name inside the workbook
	Build    BuildFunc
}

// Registry holds fixtures in registration order.
type Registry struct {
	fixtures []Fixture
	byID     map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Register adds a fixture. Registering a duplicate ID panics: fixture IDs
// are wired at startup, so a collision is a programming error.
func (r *Registry) Register(fx Fixture) {
	if _, ok := r.byID[fx.ID]; ok {
		panic(fmt.Sprintf("fixture %q registered twice", fx.ID))
	}
	r.byID[fx.ID] = len(r.fixtures)
	r.fixtures = append(r.fixtures, fx)
}

// Lookup returns the fixture registered under id.
func (r *Registry) Lookup(id string) (Fixture, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Fixture{}, false
	}
	return r.fixtures[i], true
}

// All returns every fixture in registration order.
func (r *Registry) All() []Fixture {
	out := make([]Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out
}

// IDs returns the registered fixture IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.fixtures))
	for i, fx := range r.fixtures {
		ids[i] = fx.ID
	}
	return ids
}
