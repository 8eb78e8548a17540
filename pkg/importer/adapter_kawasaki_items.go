// CLAUDE:SUMMARY Import adapter for the Kawasaki disposal-dictionary CSV, producing the item catalog YAML.
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
)

func init() {
	Register(&kawasakiItemsAdapter{})
}

type kawasakiItemsAdapter struct{}

func (a *kawasakiItemsAdapter) ID() string      { return "kawasaki-items" }
func (a *kawasakiItemsAdapter) OutFile() string { return "catalog.yaml" }
func (a *kawasakiItemsAdapter) Description() string {
	return "Kawasaki City waste separation dictionary (open data CSV)"
}
func (a *kawasakiItemsAdapter) DefaultURL() string {
	return "https://www.city.kawasaki.jp/opendata/gomi_bunbetsu.csv"
}
func (a *kawasakiItemsAdapter) License() string { return "CC BY 4.0" }

// sourceCategories maps the CSV's Japanese separation labels to catalog
// categories. Labels not listed here fail the import rather than being
// silently skipped.
var sourceCategories = map[string]catalog.Category{
	"普通ごみ":       catalog.NormalGarbage,
	"空き缶・ペットボトル": catalog.CansBottles,
	"空きびん":       catalog.GlassBottles,
	"使用済み乾電池":    catalog.UsedBatteries,
	"ミックスペーパー":   catalog.MixedPaper,
	"プラスチック資源":   catalog.PlasticPackaging,
	"プラスチック製容器包装": catalog.PlasticPackaging,
	"小物金属":       catalog.SmallMetal,
	"粗大ごみ":       catalog.Oversized,
}

func (a *kawasakiItemsAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath := filepath.Join(dlDir, "items.csv")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, csvPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	items, err := parseItemsCSV(csvPath)
	if err != nil {
		return err
	}
	fmt.Printf("  %d items\n", len(items))

	out := struct {
		Version string          `yaml:"version"`
		Source  string          `yaml:"source"`
		Items   []*catalog.Item `yaml:"items"`
	}{
		Version: "kawasaki-opendata",
		Source:  sourceURL,
		Items:   items,
	}
	return writeYAML(outputDir, a.OutFile(), out)
}

// parseItemsCSV reads the Shift_JIS item dictionary. Expected columns:
// item name, reading (kana), separation label, disposal note.
func parseItemsCSV(path string) ([]*catalog.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, japanese.ShiftJIS.NewDecoder()))
	r.FieldsPerRecord = -1

	var items []*catalog.Item
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
		if line == 1 || len(rec) < 3 {
			continue
		}

		name := strings.TrimSpace(rec[0])
		reading := strings.TrimSpace(rec[1])
		label := strings.TrimSpace(rec[2])
		if name == "" || label == "" {
			continue
		}

		cat, ok := sourceCategories[label]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown separation label %q", line, label)
		}

		it := &catalog.Item{
			ID:       fmt.Sprintf("kawasaki-%04d", len(items)+1),
			Name:     locale.Text{locale.JA: name},
			Category: cat,
		}
		if reading != "" {
			it.Keywords = map[locale.Locale][]string{locale.JA: {reading}}
		}
		if len(rec) > 3 {
			if note := strings.TrimSpace(rec[3]); note != "" {
				it.Instructions = locale.Text{locale.JA: note}
			}
		}
		items = append(items, it)
	}
	return items, nil
}
