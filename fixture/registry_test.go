package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestRegisterDefaultsOrder(t *testing.T) {
	registry := NewRegistry()
	RegisterDefaults(registry)

	want := []string{
		"personal-form",
		"employee-roster",
		"invoice",
		"template",
		"employee-table",
		"comparison",
	}
	if diff := cmp.Diff(want, registry.IDs()); diff != "" {
		t.Errorf("fixture IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	registry := NewRegistry()
	RegisterDefaults(registry)

	fx, ok := registry.Lookup("employee-roster")
	if !ok {
		t.Fatal("employee-roster not found")
	}
	if fx.Filename != "employee-roster.xlsx" || fx.Sheet != "Employees" {
		t.Errorf("unexpected fixture: %+v", fx)
	}

	if _, ok := registry.Lookup("no-such-fixture"); ok {
		t.Error("Lookup should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry := NewRegistry()
	fx := Fixture{ID: "dup", Filename: "dup.xlsx", Sheet: "Dup", Build: func(*excelize.File, *StyleManager, Options) error { return nil }}
	registry.Register(fx)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	registry.Register(fx)
}

func TestStyleManagerCachesStyles(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sm := NewStyleManager(f)

	first, err := sm.Header()
	if err != nil {
		t.Fatalf("header style: %v", err)
	}
	second, err := sm.Header()
	if err != nil {
		t.Fatalf("header style again: %v", err)
	}
	if first != second {
		t.Errorf("Header() returned different IDs: %d vs %d", first, second)
	}

	data, err := sm.Data()
	if err != nil {
		t.Fatalf("data style: %v", err)
	}
	if data == first {
		t.Error("distinct styles should not share an ID")
	}
}
