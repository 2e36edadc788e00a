package export

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/hana-site/internal/content"
)

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(_ int, msg string) { r.messages = append(r.messages, msg) }
func (r *recordingReporter) Finish() { r.finished = true }

func writeAsset(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newExporter(t *testing.T, rep *recordingReporter) *Exporter {
	t.Helper()
	assetsDir := t.TempDir()
	writeAsset(t, assetsDir, "images/gallery-broth.jpg", "broth")
	writeAsset(t, assetsDir, "images/draft.psd", "layers")

	return &Exporter{
		OutputDir:     filepath.Join(t.TempDir(), "dist"),
		AssetsDir:     assetsDir,
		AssetIncludes: []string{"images/**/*.jpg"},
		Reporter:      rep,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestExport(t *testing.T) {
	rep := &recordingReporter{}
	e := newExporter(t, rep)

	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Pages != 3 || res.Assets != 1 || res.Skipped != 0 {
		t.Errorf("unexpected result %+v", res)
	}

	// One page per tab, each showing only its own items.
	tests := []struct {
		file    string
		present string
		absent  string
	}{
		{"index.html", "Tonkotsu Hana", "Ramune Soda"},
		{"small-plates.html", "Gyoza (6pc)", "Tonkotsu Hana"},
		{"drinks.html", "Ramune Soda", "Gyoza (6pc)"},
	}
	for _, tt := range tests {
		html := readOutput(t, e.OutputDir, tt.file)
		if !strings.Contains(html, tt.present) {
			t.Errorf("%s: expected %q", tt.file, tt.present)
		}
		if strings.Contains(html, tt.absent) {
			t.Errorf("%s: did not expect %q", tt.file, tt.absent)
		}
		if !strings.Contains(html, `href="style.css"`) {
			t.Errorf("%s: expected relative stylesheet link", tt.file)
		}
	}

	if css := readOutput(t, e.OutputDir, StylesheetFile); !strings.Contains(css, ".site-header") {
		t.Error("style.css missing site rules")
	}

	var sections []content.Section
	if err := json.Unmarshal([]byte(readOutput(t, e.OutputDir, MenuFile)), &sections); err != nil {
		t.Fatalf("menu.json: %v", err)
	}
	if len(sections) != 3 {
		t.Errorf("menu.json has %d sections, want 3", len(sections))
	}

	if got := readOutput(t, e.OutputDir, "images/gallery-broth.jpg"); got != "broth" {
		t.Errorf("copied asset = %q", got)
	}
	if _, err := os.Stat(filepath.Join(e.OutputDir, "images", "draft.psd")); !os.IsNotExist(err) {
		t.Error("asset outside the include globs was exported")
	}

	if rep.total != 6 || len(rep.messages) != 6 || !rep.finished {
		t.Errorf("reporter saw total=%d updates=%d finished=%v", rep.total, len(rep.messages), rep.finished)
	}
	if rep.messages[0] != "index.html" {
		t.Errorf("first step = %q, want index.html", rep.messages[0])
	}
}

func TestExportSkipsUnchangedAssets(t *testing.T) {
	e := newExporter(t, &recordingReporter{})

	if _, err := e.Export(context.Background()); err != nil {
		t.Fatalf("first Export: %v", err)
	}
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if res.Assets != 0 || res.Skipped != 1 {
		t.Errorf("expected the unchanged asset to be skipped, got %+v", res)
	}

	writeAsset(t, e.AssetsDir, "images/gallery-broth.jpg", "richer broth")
	res, err = e.Export(context.Background())
	if err != nil {
		t.Fatalf("third Export: %v", err)
	}
	if res.Assets != 1 || res.Skipped != 0 {
		t.Errorf("expected the changed asset to be copied, got %+v", res)
	}
	if got := readOutput(t, e.OutputDir, "images/gallery-broth.jpg"); got != "richer broth" {
		t.Errorf("copied asset = %q", got)
	}
}

func TestExportCancelled(t *testing.T) {
	e := newExporter(t, &recordingReporter{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Export(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
	if _, err := os.Stat(filepath.Join(e.OutputDir, "index.html")); !os.IsNotExist(err) {
		t.Error("no page should be written after cancellation")
	}
}

func TestExportWithoutAssetsDir(t *testing.T) {
	e := &Exporter{
		OutputDir:     t.TempDir(),
		AssetsDir:     filepath.Join(t.TempDir(), "missing"),
		AssetIncludes: []string{"images/**"},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Pages != 3 || res.Assets != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}
