package schedule

import (
	"testing"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
)

const testAreasYAML = `
areas:
  - id: kawasaki-1
    ward: "川崎区"
    name:
      ja: "川崎区 大島・田島地区"
      en: "Kawasaki Ward, Oshima/Tajima"
    rules:
      normal-garbage: [1, 5]
      small-metal: {weekday: 0, weeks: [2, 4]}
  - id: takatsu-1
    ward: "高津区"
    name:
      ja: "高津区 溝口地区"
    rules:
      normal-garbage: [2, 6]
`

func TestParseAreas(t *testing.T) {
	as, err := ParseAreas([]byte(testAreasYAML))
	if err != nil {
		t.Fatalf("ParseAreas: %v", err)
	}
	if len(as.All()) != 2 {
		t.Fatalf("All() = %d areas, want 2", len(as.All()))
	}

	a := as.ByID("kawasaki-1")
	if a == nil {
		t.Fatal("ByID(kawasaki-1) = nil")
	}
	if a.Ward != "川崎区" {
		t.Errorf("Ward = %q", a.Ward)
	}
	if got := a.Name.Resolve(locale.EN); got != "Kawasaki Ward, Oshima/Tajima" {
		t.Errorf("Name en = %q", got)
	}

	r, ok := a.Rules[catalog.NormalGarbage]
	if !ok || len(r.Weekdays) != 2 {
		t.Errorf("normal-garbage rule = %+v", r)
	}
	r, ok = a.Rules[catalog.SmallMetal]
	if !ok || r.Nth == nil || r.Nth.Weekday != 0 {
		t.Errorf("small-metal rule = %+v", r)
	}

	if as.ByID("missing") != nil {
		t.Error("ByID(missing) should be nil")
	}
}

func TestParseAreasByWard(t *testing.T) {
	as, err := ParseAreas([]byte(testAreasYAML))
	if err != nil {
		t.Fatalf("ParseAreas: %v", err)
	}
	got := as.ByWard("高津区")
	if len(got) != 1 || got[0].ID != "takatsu-1" {
		t.Errorf("ByWard(高津区) = %v", got)
	}
	if out := as.ByWard("多摩区"); out != nil {
		t.Errorf("ByWard(多摩区) = %v, want nil", out)
	}
}

func TestParseAreasRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty id", "areas:\n  - ward: x\n    rules: {}\n"},
		{"duplicate id", "areas:\n  - id: a\n  - id: a\n"},
		{"unknown category", "areas:\n  - id: a\n    rules:\n      burnable: [1]\n"},
		{"bad rule", "areas:\n  - id: a\n    rules:\n      normal-garbage: [9]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAreas([]byte(tt.in)); err == nil {
				t.Errorf("ParseAreas accepted %s", tt.name)
			}
		})
	}
}
