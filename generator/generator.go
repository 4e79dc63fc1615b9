package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orayew2002/excel-fixtures/fixture"
	"github.com/orayew2002/excel-fixtures/internal/logger"
	"github.com/xuri/excelize/v2"
)

// Result describes one generated fixture file.
type Result struct {
	ID   string
	Path string
}

// Runner builds registered fixtures and saves them under an output directory.
type Runner struct {
	registry *fixture.Registry
	outDir   string
	opts     fixture.Options
}

// New creates a Runner writing into outDir with the given builder options.
func New(registry *fixture.Registry, outDir string, opts fixture.Options) *Runner {
	return &Runner{registry: registry, outDir: outDir, opts: opts}
}

// Generate builds the fixtures named by ids and saves each to
// <outDir>/<filename>, overwriting any prior file. With no ids, every
// registered fixture is built in registration order. Unknown ids fail
// before any file is written.
func (r *Runner) Generate(ids []string) ([]Result, error) {
	fixtures, err := r.resolve(ids)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", r.outDir, err)
	}

	results := make([]Result, 0, len(fixtures))
	for _, fx := range fixtures {
		path := filepath.Join(r.outDir, fx.Filename)
		if err := r.generateOne(fx, path); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fx.ID, err)
		}
		logger.Info("fixture written", "id", fx.ID, "path", path, "sheet", fx.Sheet)
		results = append(results, Result{ID: fx.ID, Path: path})
	}

	return results, nil
}

// GenerateBytes builds a single fixture and returns the workbook as bytes
// without touching the filesystem.
func (r *Runner) GenerateBytes(id string) ([]byte, error) {
	fx, ok := r.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q", id)
	}

	f, err := r.build(fx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Runner) resolve(ids []string) ([]fixture.Fixture, error) {
	if len(ids) == 0 {
		return r.registry.All(), nil
	}

	fixtures := make([]fixture.Fixture, 0, len(ids))
	for _, id := range ids {
		fx, ok := r.registry.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown fixture %q (known: %v)", id, r.registry.IDs())
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures, nil
}

func (r *Runner) generateOne(fx fixture.Fixture, path string) error {
	f, err := r.build(fx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

func (r *Runner) build(fx fixture.Fixture) (*excelize.File, error) {
	f := excelize.NewFile()
	sm := fixture.NewStyleManager(f)

	if err := fx.Build(f, sm, r.opts); err != nil {
		f.Close()
		return nil, fmt.Errorf("build: %w", err)
	}

	return f, nil
}
