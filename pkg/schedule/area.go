// CLAUDE:SUMMARY Area profiles: per-category collection rules for each district, loaded once from YAML.
package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
)

// Area is one district's collection profile. A category absent from Rules
// is never collected there — that is data, not an error.
type Area struct {
	ID    string                    `yaml:"id" json:"id"`
	Ward  string                    `yaml:"ward" json:"ward"`
	Name  locale.Text               `yaml:"name" json:"name"`
	Rules map[catalog.Category]Rule `yaml:"rules" json:"-"`
}

// Areas is the loaded, read-only area set.
type Areas struct {
	byID  map[string]*Area
	order []*Area
}

type areasFile struct {
	Areas []*Area `yaml:"areas"`
}

// LoadAreas reads the area-profile YAML file.
func LoadAreas(path string) (*Areas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read areas %s: %w", path, err)
	}
	return ParseAreas(data)
}

// ParseAreas builds the area set from YAML bytes.
func ParseAreas(data []byte) (*Areas, error) {
	var f areasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse areas: %w", err)
	}

	as := &Areas{
		byID:  make(map[string]*Area, len(f.Areas)),
		order: f.Areas,
	}
	for _, a := range f.Areas {
		if a.ID == "" {
			return nil, fmt.Errorf("area with empty id")
		}
		if _, dup := as.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate area id %q", a.ID)
		}
		for cat := range a.Rules {
			if _, err := catalog.ParseCategory(string(cat)); err != nil {
				return nil, fmt.Errorf("area %s: %w", a.ID, err)
			}
		}
		as.byID[a.ID] = a
	}
	return as, nil
}

// ByID returns the area with the given id, or nil.
func (as *Areas) ByID(id string) *Area {
	return as.byID[id]
}

// All returns all areas in file order.
func (as *Areas) All() []*Area {
	return as.order
}

// ByWard returns the areas of a ward, in file order.
func (as *Areas) ByWard(ward string) []*Area {
	var out []*Area
	for _, a := range as.order {
		if a.Ward == ward {
			out = append(out, a)
		}
	}
	return out
}
