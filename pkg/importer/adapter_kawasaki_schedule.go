// CLAUDE:SUMMARY Import adapter for the Kawasaki collection-day CSV, producing the area-profile YAML.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/schedule"
)

func init() {
	Register(&kawasakiScheduleAdapter{})
}

type kawasakiScheduleAdapter struct{}

func (a *kawasakiScheduleAdapter) ID() string      { return "kawasaki-schedule" }
func (a *kawasakiScheduleAdapter) OutFile() string { return "areas.yaml" }
func (a *kawasakiScheduleAdapter) Description() string {
	return "Kawasaki City collection-day table per district (open data CSV)"
}
func (a *kawasakiScheduleAdapter) DefaultURL() string {
	return "https://www.city.kawasaki.jp/opendata/shushubi.csv"
}
func (a *kawasakiScheduleAdapter) License() string { return "CC BY 4.0" }

// scheduleColumns maps CSV column headers to rule categories, in column
// order after the ward and district columns.
var scheduleColumns = []catalog.Category{
	catalog.NormalGarbage,
	catalog.CansBottles,
	catalog.GlassBottles,
	catalog.UsedBatteries,
	catalog.MixedPaper,
	catalog.PlasticPackaging,
	catalog.SmallMetal,
}

var weekdayKanji = map[rune]int{
	'日': 0, '月': 1, '火': 2, '水': 3, '木': 4, '金': 5, '土': 6,
}

func (a *kawasakiScheduleAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath := filepath.Join(dlDir, "schedule.csv")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, csvPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	areas, err := parseScheduleCSV(csvPath)
	if err != nil {
		return err
	}
	fmt.Printf("  %d areas\n", len(areas))

	out := struct {
		Areas []*schedule.Area `yaml:"areas"`
	}{Areas: areas}
	return writeYAML(outputDir, a.OutFile(), out)
}

// parseScheduleCSV reads the Shift_JIS collection-day table. Expected
// columns: ward, district, then one rule column per category in
// scheduleColumns order. Empty rule cells mean no collection.
func parseScheduleCSV(path string) ([]*schedule.Area, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, japanese.ShiftJIS.NewDecoder()))
	r.FieldsPerRecord = -1

	var areas []*schedule.Area
	seen := make(map[string]bool)
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		if line == 1 || len(rec) < 2 {
			continue
		}

		ward := strings.TrimSpace(rec[0])
		district := strings.TrimSpace(rec[1])
		if ward == "" || district == "" {
			continue
		}

		area := &schedule.Area{
			ID:    fmt.Sprintf("kawasaki-%03d", len(areas)+1),
			Ward:  ward,
			Name:  locale.Text{locale.JA: ward + " " + district},
			Rules: make(map[catalog.Category]schedule.Rule),
		}
		if seen[area.ID] {
			return nil, fmt.Errorf("line %d: duplicate area %s", line, area.ID)
		}
		seen[area.ID] = true

		for i, cat := range scheduleColumns {
			col := 2 + i
			if col >= len(rec) {
				break
			}
			cell := strings.TrimSpace(rec[col])
			if cell == "" {
				continue
			}
			rule, err := parseRuleCell(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, %s: %w", line, cat, err)
			}
			area.Rules[cat] = rule
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// parseRuleCell decodes a rule cell. Plain weekday sets look like 月・木,
// nth-weekday rules like 第1・3土曜.
func parseRuleCell(cell string) (schedule.Rule, error) {
	cell = strings.TrimSuffix(cell, "曜日")
	cell = strings.TrimSuffix(cell, "曜")

	if rest, ok := strings.CutPrefix(cell, "第"); ok {
		return parseNthCell(rest)
	}

	var weekdays []int
	for _, part := range strings.Split(cell, "・") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rs := []rune(part)
		wd, ok := weekdayKanji[rs[0]]
		if !ok || len(rs) != 1 {
			return schedule.Rule{}, fmt.Errorf("unrecognized weekday %q", part)
		}
		weekdays = append(weekdays, wd)
	}
	if len(weekdays) == 0 {
		return schedule.Rule{}, fmt.Errorf("empty rule cell")
	}
	return schedule.Rule{Weekdays: weekdays}, nil
}

// parseNthCell decodes the remainder of an nth-weekday cell, e.g. "1・3土"
// after the leading 第 is cut.
func parseNthCell(rest string) (schedule.Rule, error) {
	rs := []rune(rest)
	if len(rs) < 2 {
		return schedule.Rule{}, fmt.Errorf("truncated nth-weekday cell %q", "第"+rest)
	}

	wd, ok := weekdayKanji[rs[len(rs)-1]]
	if !ok {
		return schedule.Rule{}, fmt.Errorf("unrecognized weekday %q", string(rs[len(rs)-1]))
	}

	var weeks []int
	for _, part := range strings.Split(string(rs[:len(rs)-1]), "・") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(part) != 1 || part[0] < '1' || part[0] > '4' {
			return schedule.Rule{}, fmt.Errorf("week %q out of range 1..4", part)
		}
		weeks = append(weeks, int(part[0]-'0'))
	}
	if len(weeks) == 0 {
		return schedule.Rule{}, fmt.Errorf("nth-weekday cell %q has no weeks", "第"+rest)
	}
	return schedule.Rule{Nth: &schedule.NthWeekday{Weekday: wd, Weeks: weeks}}, nil
}
