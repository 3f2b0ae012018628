// Package viewer provides an interactive terminal browser over a completed
// link: the symbol table, the memory map and the collected warnings, each in
// its own scrollable panel.
package viewer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/marie-linker/config"
	"github.com/lookbusy1344/marie-linker/linker"
)

// Viewer represents the text user interface over a link result
type Viewer struct {
	App    *tview.Application
	Layout *tview.Flex

	SymbolView   *tview.TextView
	MapView      *tview.TextView
	WarningsView *tview.TextView
	StatusBar    *tview.TextView

	sections Sections
	report   *linker.Report
	color    bool
	start    tview.Primitive
}

// New creates a viewer over the rendered report text and the structured
// result of the same run
func New(output string, rep *linker.Report, cfg *config.Config) *Viewer {
	v := &Viewer{
		App:      tview.NewApplication(),
		sections: splitReport(output),
		report:   rep,
		color:    cfg.Viewer.ColorOutput,
	}

	v.initializeViews(cfg)
	v.buildLayout()
	v.setupKeyBindings()
	v.populate()

	switch cfg.Viewer.StartPanel {
	case "symbols":
		v.start = v.SymbolView
	case "warnings":
		v.start = v.WarningsView
	default:
		v.start = v.MapView
	}

	return v
}

// initializeViews creates the view panels
func (v *Viewer) initializeViews(cfg *config.Config) {
	v.SymbolView = tview.NewTextView().
		SetDynamicColors(v.color).
		SetScrollable(true).
		SetWrap(false)

	v.MapView = tview.NewTextView().
		SetDynamicColors(v.color).
		SetScrollable(true).
		SetWrap(false)

	v.WarningsView = tview.NewTextView().
		SetDynamicColors(v.color).
		SetScrollable(true).
		SetWrap(false)

	v.StatusBar = tview.NewTextView().
		SetDynamicColors(v.color).
		SetWrap(false)

	if cfg.Viewer.ShowTitles {
		v.SymbolView.SetBorder(true).SetTitle(" Symbol Table ")
		v.MapView.SetBorder(true).SetTitle(" Memory Map ")
		v.WarningsView.SetBorder(true).SetTitle(" Warnings ")
	} else {
		v.SymbolView.SetBorder(true)
		v.MapView.SetBorder(true)
		v.WarningsView.SetBorder(true)
	}
}

// buildLayout constructs the panel layout
func (v *Viewer) buildLayout() {
	// Left panel: memory map; right panel: symbols over warnings
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.SymbolView, 0, 1, false).
		AddItem(v.WarningsView, 0, 1, false)

	panels := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(v.MapView, 0, 2, true).
		AddItem(right, 0, 1, false)

	v.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(panels, 0, 1, true).
		AddItem(v.StatusBar, 1, 0, false)
}

// setupKeyBindings sets up keyboard shortcuts
func (v *Viewer) setupKeyBindings() {
	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			v.cycleFocus()
			return nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			v.App.Stop()
			return nil
		}
		if event.Rune() == 'q' {
			v.App.Stop()
			return nil
		}
		return event
	})
}

// cycleFocus moves focus map -> symbols -> warnings -> map
func (v *Viewer) cycleFocus() {
	switch {
	case v.MapView.HasFocus():
		v.App.SetFocus(v.SymbolView)
	case v.SymbolView.HasFocus():
		v.App.SetFocus(v.WarningsView)
	default:
		v.App.SetFocus(v.MapView)
	}
}

// populate fills the panels from the split report
func (v *Viewer) populate() {
	var sb strings.Builder
	for _, line := range v.sections.Symbols {
		if v.color && strings.Contains(line, " Error:") {
			name, rest, _ := strings.Cut(line, " ")
			fmt.Fprintf(&sb, "%s [red]%s[-]\n", name, rest)
		} else {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	v.SymbolView.SetText(sb.String())

	sb.Reset()
	for _, line := range v.sections.Map {
		if v.color && strings.Contains(line, " Error:") {
			word, rest, _ := strings.Cut(line, " Error:")
			fmt.Fprintf(&sb, "%s [red]Error:%s[-]\n", word, rest)
		} else {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	v.MapView.SetText(sb.String())

	sb.Reset()
	if len(v.sections.Warnings) == 0 {
		sb.WriteString("(no warnings)\n")
	}
	for _, line := range v.sections.Warnings {
		if v.color {
			fmt.Fprintf(&sb, "[yellow]%s[-]\n", line)
		} else {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	v.WarningsView.SetText(sb.String())

	if v.report != nil {
		words := 0
		for _, mod := range v.report.Modules {
			words += mod.Size
		}
		v.StatusBar.SetText(fmt.Sprintf(" %d modules | %d/%d words | %d symbols | %d warnings  (Tab: switch panel, q: quit)",
			len(v.report.Modules), words, linker.MachineWords, len(v.report.Symbols), len(v.sections.Warnings)))
	}
}

// Run starts the viewer and blocks until the user quits
func (v *Viewer) Run() error {
	return v.App.SetRoot(v.Layout, true).SetFocus(v.start).Run()
}

// Stop stops the viewer
func (v *Viewer) Stop() {
	v.App.Stop()
}
