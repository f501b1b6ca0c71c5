// Package ui provides the TCO Compare desktop application.
package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	quoteimporter "github.com/piwi3910/tcocompare/internal/importer"
	"github.com/piwi3910/tcocompare/internal/logging"
	"github.com/piwi3910/tcocompare/internal/model"
	"github.com/piwi3910/tcocompare/internal/project"
)

// App holds all application state and UI references.
type App struct {
	fyneApp     fyne.App
	window      fyne.Window
	catalog     *catalog.Catalog
	config      model.AppConfig
	templates   model.TemplateStore
	project     model.Project
	projectPath string
	history     *History

	recommendations []model.Recommendation

	// UI references for dynamic updates
	tabs            *container.AppTabs
	form            *scenarioForm
	templateSelect  *widget.Select
	undoBtn         *ttwidget.Button
	redoBtn         *ttwidget.Button
	resultContainer *fyne.Container
	riskContainer   *fyne.Container
	recContainer    *fyne.Container
	recentMenu      *fyne.MenuItem
}

// NewApp creates the application state. cfg supplies the defaults of the
// first scenario and the recent project list.
func NewApp(application fyne.App, window fyne.Window, cat *catalog.Catalog, cfg model.AppConfig) *App {
	templates, err := project.LoadDefaultTemplates()
	if err != nil {
		logging.Default().Warn("failed to load templates, using built-ins", "error", err)
	}

	a := &App{
		fyneApp:   application,
		window:    window,
		catalog:   cat,
		config:    cfg,
		templates: templates,
		history:   NewHistory(),
	}
	a.project = a.newProject()
	application.Settings().SetTheme(ThemeForPreference(cfg.Theme))
	return a
}

func (a *App) newProject() model.Project {
	p := model.NewProject()
	a.config.ApplyToScenario(&p.Scenario)
	return p
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	a.recentMenu = fyne.NewMenuItem("Open Recent", nil)
	a.recentMenu.ChildMenu = fyne.NewMenu("")
	a.fillRecentMenu()

	exportItems := make([]*fyne.MenuItem, 0, len(export.AllFormats())+2)
	for _, f := range export.AllFormats() {
		f := f
		exportItems = append(exportItems, fyne.NewMenuItem(formatMenuLabel(f), func() {
			a.exportFormat(f)
		}))
	}
	exportItems = append(exportItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("All Formats to Folder...", func() { a.exportBundle() }),
	)
	exportMenu := fyne.NewMenuItem("Export", nil)
	exportMenu.ChildMenu = fyne.NewMenu("", exportItems...)

	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.resetProject(a.newProject(), "")
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		a.recentMenu,
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Price Quotes...", func() {
			a.importQuotes()
		}),
		exportMenu,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	undoItem := fyne.NewMenuItem("Undo", a.undo)
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoItem := fyne.NewMenuItem("Redo", a.redo)
	redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		undoItem,
		redoItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Manage Templates...", a.showManageTemplatesDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Backup / Restore...", a.showImportExportDialog),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Calculate", func() {
			a.applyForm()
			a.tabs.SelectIndex(1)
		}),
		fyne.NewMenuItem("What-If Analysis...", a.showWhatIfDialog),
		fyne.NewMenuItem("Sensitivity Analysis...", a.showSensitivityDialog),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
	a.window.Canvas().AddShortcut(undoItem.Shortcut, func(fyne.Shortcut) { a.undo() })
	a.window.Canvas().AddShortcut(redoItem.Shortcut, func(fyne.Shortcut) { a.redo() })
}

func formatMenuLabel(f export.Format) string {
	switch f {
	case export.FormatPDF:
		return "PDF Report..."
	case export.FormatCards:
		return "Vendor Cards (PDF)..."
	case export.FormatXLSX:
		return "Excel Workbook..."
	default:
		return strings.ToUpper(string(f)) + "..."
	}
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TCO Compare",
		"TCO Compare: NAC Total Cost of Ownership\n\n"+
			"Compares the multi-year cost, risk and compliance\n"+
			"of network access control products.\n\n"+
			"Vendor figures are illustrative estimates.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.tabs = container.NewAppTabs(
		container.NewTabItem("Scenario", a.buildScenarioPanel()),
		container.NewTabItem("Results", a.buildResultsPanel()),
		container.NewTabItem("Risk & Compliance", a.buildRiskPanel()),
		container.NewTabItem("Recommendations", a.buildRecommendationsPanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)
	a.recalculate()
	return a.tabs
}

// ─── State changes ─────────────────────────────────────────

// setScenario records the current scenario for undo and recalculates.
// Unchanged scenarios do not create an undo step.
func (a *App) setScenario(s model.Scenario, label string) {
	if scenariosEqual(a.project.Scenario, s) {
		a.recalculate()
		return
	}
	a.history.Push(MakeSnapshot(a.project.Scenario, label))
	a.project.Scenario = s
	a.recalculate()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.project.Scenario, "current"))
	if !ok {
		return
	}
	a.restore(snap.Scenario)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.project.Scenario, "current"))
	if !ok {
		return
	}
	a.restore(snap.Scenario)
}

func (a *App) restore(s model.Scenario) {
	a.project.Scenario = s
	a.form.load(s, a.project.Notes)
	a.recalculate()
}

// recalculate compares the current scenario and refreshes every result tab.
func (a *App) recalculate() {
	cmp, err := engine.Compare(a.catalog, a.project.Scenario)
	if err != nil {
		a.project.Result = nil
		a.recommendations = nil
		dialog.ShowError(err, a.window)
	} else {
		a.project.Result = &cmp
		recs, err := engine.RecommendFromComparison(a.catalog, cmp, engine.WeightsFor(a.project.Scenario.Priorities))
		if err != nil {
			logging.Default().Warn("failed to score vendors", "error", err)
		}
		a.recommendations = recs
	}
	a.refreshResults()
	a.refreshRisk()
	a.refreshRecommendations()
	a.refreshHistoryButtons()
}

func (a *App) resetProject(p model.Project, path string) {
	a.project = p
	a.projectPath = path
	a.history.Clear()
	a.form.load(a.project.Scenario, a.project.Notes)
	a.recalculate()
	title := "TCO Compare"
	if path != "" {
		title += " - " + filepath.Base(path)
	}
	a.window.SetTitle(title)
}

// ─── Projects ──────────────────────────────────────────────

func (a *App) saveProject() {
	a.project.Notes = a.form.notes.Text
	if name := strings.TrimSpace(a.project.Scenario.Name); name != "" {
		a.project.Name = name
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if !strings.HasSuffix(path, model.ProjectExtension) {
			path = strings.TrimSuffix(path, filepath.Ext(path)) + model.ProjectExtension
		}
		if err := project.SaveProject(path, &a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.projectPath = path
		a.rememberProject(path)
	}, a.window)
	d.SetFileName(projectFileName(a.project.Name))
	d.Show()
}

func projectFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled"
	}
	return name + model.ProjectExtension
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.openProjectPath(path)
	}, a.window)
	d.Show()
}

func (a *App) openProjectPath(path string) {
	proj, err := project.LoadProject(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.resetProject(proj, path)
	a.rememberProject(path)
}

func (a *App) rememberProject(path string) {
	a.config.AddRecentProject(path)
	if err := a.saveConfig(); err != nil {
		logging.Default().Warn("failed to save recent projects", "error", err)
	}
	a.refreshRecentMenu()
}

func (a *App) fillRecentMenu() {
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentProjects))
	for _, p := range a.config.RecentProjects {
		path := p
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openProjectPath(path)
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent projects", nil)
		none.Disabled = true
		items = append(items, none)
	}
	a.recentMenu.ChildMenu.Items = items
}

func (a *App) refreshRecentMenu() {
	if a.recentMenu == nil {
		return
	}
	a.fillRecentMenu()
	if m := a.window.MainMenu(); m != nil {
		m.Refresh()
	}
}

// ─── Export ────────────────────────────────────────────────

func (a *App) currentComparison() (model.Comparison, bool) {
	if a.project.Result == nil || len(a.project.Result.Results) == 0 {
		dialog.ShowInformation("No results", "Calculate the scenario before exporting.", a.window)
		return model.Comparison{}, false
	}
	return *a.project.Result, true
}

func (a *App) exportFormat(f export.Format) {
	cmp, ok := a.currentComparison()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.Write(writer, f, cmp); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Report saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(f.FileName(export.BaseName(cmp)))
	d.Show()
}

func (a *App) exportBundle() {
	cmp, ok := a.currentComparison()
	if !ok {
		return
	}
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			return
		}
		paths, err := export.Bundle(context.Background(), dir.Path(), cmp, nil)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		names := make([]string, len(paths))
		for i, p := range paths {
			names[i] = filepath.Base(p)
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Wrote %d files to %s:\n\n%s", len(paths), dir.Path(), strings.Join(names, "\n")), a.window)
	}, a.window)
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importQuotes() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		result := quoteimporter.ImportFile(path)
		result.CheckVendors(a.catalog)
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result quoteimporter.ImportResult) {
	if len(result.Errors) > 0 {
		dialog.ShowError(fmt.Errorf("errors encountered during import:\n\n%s", strings.Join(result.Errors, "\n")), a.window)
	}
	if len(result.Warnings) > 0 {
		logging.Default().Warn("price quote import warnings", "warnings", result.Warnings)
	}
	if len(result.Quotes) == 0 {
		return
	}

	if err := a.catalog.ApplyQuotes(result.Quotes); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.recalculate()

	msg := fmt.Sprintf("Applied %d price quotes.", len(result.Quotes))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// scenariosEqual compares every scenario input.
func scenariosEqual(x, y model.Scenario) bool {
	if x.ID != y.ID || x.Name != y.Name || x.Devices != y.Devices || x.Years != y.Years ||
		x.Industry != y.Industry || x.Region != y.Region || x.RiskProfile != y.RiskProfile ||
		x.Insurance != y.Insurance || x.AvgFTESalary != y.AvgFTESalary ||
		x.BaselineVendorID != y.BaselineVendorID {
		return false
	}
	if len(x.VendorIDs) != len(y.VendorIDs) || len(x.Priorities) != len(y.Priorities) {
		return false
	}
	for i := range x.VendorIDs {
		if x.VendorIDs[i] != y.VendorIDs[i] {
			return false
		}
	}
	for i := range x.Priorities {
		if x.Priorities[i] != y.Priorities[i] {
			return false
		}
	}
	return true
}
