// Package export writes a static rendition of the site: one HTML file per
// menu tab, the stylesheet, a JSON copy of the menu and the allowed assets.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/hana-site/internal/assets"
	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/page"
	"github.com/ziadkadry99/hana-site/internal/progress"
	"github.com/ziadkadry99/hana-site/internal/view"
)

// Fixed output names besides the per-tab pages.
const (
	StylesheetFile = "style.css"
	MenuFile       = "menu.json"
)

// Exporter converts the site into plain files under OutputDir.
type Exporter struct {
	OutputDir       string
	AssetsDir       string
	AssetIncludes   []string
	SiteName        string
	ScrollThreshold int
	Reporter        progress.Reporter
	Logger          *slog.Logger
}

// Result counts what an export wrote.
type Result struct {
	Pages   int
	Assets  int
	Skipped int // assets already present with identical content
}

// step is one file to produce.
type step struct {
	name  string
	write func() (skipped bool, err error)
}

// Export writes every file. It stops at the first failure or when ctx is
// cancelled; files written before that are left in place.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := page.New(page.Options{
		SiteName:        e.SiteName,
		Mode:            page.ModeStatic,
		ScrollThreshold: e.ScrollThreshold,
	})
	if err != nil {
		return Result{}, err
	}

	files, err := assets.Walk(e.AssetsDir, e.AssetIncludes)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		logger.Warn("no assets matched", "dir", e.AssetsDir, "include", e.AssetIncludes)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	var res Result
	steps := make([]step, 0, len(content.Categories())+2+len(files))
	for _, cat := range content.Categories() {
		cat := cat
		steps = append(steps, step{name: page.StaticFile(cat), write: func() (bool, error) {
			res.Pages++
			return false, e.writePage(renderer, cat)
		}})
	}
	steps = append(steps,
		step{name: StylesheetFile, write: func() (bool, error) {
			return false, e.writeFile(StylesheetFile, page.Stylesheet())
		}},
		step{name: MenuFile, write: func() (bool, error) {
			return false, e.writeMenu()
		}},
	)
	for _, f := range files {
		f := f
		steps = append(steps, step{name: f.RelPath, write: func() (bool, error) {
			skipped, err := e.copyAsset(f)
			if err == nil && !skipped {
				res.Assets++
			}
			return skipped, err
		}})
	}

	reporter.Start(len(steps))
	defer reporter.Finish()

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		skipped, err := s.write()
		if err != nil {
			return res, fmt.Errorf("exporting %s: %w", s.name, err)
		}
		if skipped {
			res.Skipped++
			logger.Debug("asset unchanged", "path", s.name)
		}
		reporter.Update(i+1, s.name)
	}

	logger.Info("site exported", "dir", e.OutputDir, "pages", res.Pages, "assets", res.Assets, "skipped", res.Skipped)
	return res, nil
}

// writePage renders the initial view with cat as the active tab.
func (e *Exporter) writePage(r *page.Renderer, cat content.Category) error {
	var buf bytes.Buffer
	state := view.Initial().WithActiveCategory(cat)
	if err := r.RenderState(&buf, state, view.ReservationForm{}, nil); err != nil {
		return err
	}
	return e.writeFile(page.StaticFile(cat), buf.Bytes())
}

func (e *Exporter) writeMenu() error {
	data, err := json.MarshalIndent(content.FullMenu(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling menu: %w", err)
	}
	return e.writeFile(MenuFile, append(data, '\n'))
}

func (e *Exporter) writeFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(e.OutputDir, name), data, 0o644)
}

// copyAsset copies f into the output tree at the same relative path. A
// destination with the same content hash is left alone.
func (e *Exporter) copyAsset(f assets.File) (bool, error) {
	dst := filepath.Join(e.OutputDir, filepath.FromSlash(f.RelPath))
	if hash, err := assets.HashFile(dst); err == nil && hash == f.ContentHash {
		return true, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	src, err := os.Open(f.Path)
	if err != nil {
		return false, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return false, err
	}
	return false, out.Close()
}
