package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
)

func TestDownloadFile(t *testing.T) {
	content := "hello world"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "test.txt")
	if err := downloadFile(context.Background(), ts.URL, dest); err != nil {
		t.Fatalf("downloadFile: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q, want %q", string(data), content)
	}
}

func TestDownloadFile_Retry(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "retry.txt")
	if err := downloadFile(context.Background(), ts.URL, dest); err != nil {
		t.Fatalf("downloadFile with retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDownloadFile_AllFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "fail.txt")
	err := downloadFile(context.Background(), ts.URL, dest)
	if err == nil {
		t.Error("expected error after all retries exhausted")
	}
}

func TestWriteYAML(t *testing.T) {
	dir := t.TempDir()
	out := struct {
		Version string          `yaml:"version"`
		Source  string          `yaml:"source"`
		Items   []*catalog.Item `yaml:"items"`
	}{
		Version: "test",
		Source:  "unit test",
		Items: []*catalog.Item{
			{
				ID:       "test-0001",
				Name:     locale.Text{locale.JA: "新聞紙", locale.EN: "Newspaper"},
				Category: catalog.MixedPaper,
			},
		},
	}

	if err := writeYAML(dir, "catalog.yaml", out); err != nil {
		t.Fatalf("writeYAML: %v", err)
	}

	// Verify the file was written and loads back as a catalog.
	loaded, err := catalog.Load(filepath.Join(dir, "catalog.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len = %d, want 1", loaded.Len())
	}
	it := loaded.ItemByID("test-0001")
	if it == nil {
		t.Fatal("item test-0001 not found")
	}
	if it.Category != catalog.MixedPaper {
		t.Errorf("Category = %q, want %q", it.Category, catalog.MixedPaper)
	}
}
