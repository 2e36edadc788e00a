// Package progress reports export progress on a terminal or in CI logs.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per exported file.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// InCI reports whether the process runs under a CI system, where a redrawn
// progress bar would only clutter the log.
func InCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
}

// NewReporter returns a bar on w, or plain lines on w when running in CI.
func NewReporter(w io.Writer) Reporter {
	if InCI() {
		return &LineReporter{w: w}
	}
	return &BarReporter{w: w}
}

// BarReporter draws a progress bar.
type BarReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Exporting site"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(current int, message string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(message)
	_ = r.bar.Set(current)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per step.
type LineReporter struct {
	w     io.Writer
	total int
}

func (r *LineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "exporting %d files\n", total)
}

func (r *LineReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *LineReporter) Finish() {
	fmt.Fprintln(r.w, "export complete")
}

// Discard reports nothing.
type Discard struct{}

func (Discard) Start(int) {}
func (Discard) Update(int, string) {}
func (Discard) Finish() {}
