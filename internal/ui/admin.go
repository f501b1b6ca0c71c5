package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tcocompare/internal/model"
	"github.com/piwi3910/tcocompare/internal/project"
)

// ─── Settings ──────────────────────────────────────────────

// boundedIntEntry edits *val and rejects text outside [lo, hi].
func boundedIntEntry(val *int, lo, hi int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(*val))
	e.Validator = func(text string) error {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a whole number from %d to %d", lo, hi)
		}
		return nil
	}
	e.OnChanged = func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && v >= lo && v <= hi {
			*val = v
		}
	}
	return e
}

// showSettingsDialog edits the defaults applied to new projects.
func (a *App) showSettingsDialog() {
	cfg := a.config

	salaryEntry := widget.NewEntry()
	salaryEntry.SetPlaceHolder("Region average")
	if cfg.DefaultFTESalary > 0 {
		salaryEntry.SetText(strconv.FormatFloat(cfg.DefaultFTESalary, 'f', 0, 64))
	}
	salaryEntry.Validator = func(text string) error {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil || v < 0 {
			return fmt.Errorf("enter a positive salary or leave blank")
		}
		return nil
	}
	salaryEntry.OnChanged = func(text string) {
		cfg.DefaultFTESalary = 0
		if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && v > 0 {
			cfg.DefaultFTESalary = v
		}
	}

	industries := industryIndex(a.catalog)
	industrySelect := widget.NewSelect(industries.labels, func(name string) {
		cfg.DefaultIndustry = industries.toID[name]
	})
	industrySelect.SetSelected(industries.toName[cfg.DefaultIndustry])

	regionSelect := widget.NewSelect(a.catalog.Regions(), func(region string) {
		cfg.DefaultRegion = region
	})
	regionSelect.SetSelected(cfg.DefaultRegion)

	vendors := vendorIndex(a.catalog)
	baselineSelect := widget.NewSelect(vendors.labels, func(name string) {
		cfg.DefaultBaseline = vendors.toID[name]
	})
	baselineSelect.SetSelected(vendors.toName[cfg.DefaultBaseline])

	themeSelect := widget.NewRadioGroup([]string{"system", "light", "dark"}, func(pref string) {
		cfg.Theme = pref
	})
	themeSelect.Horizontal = true
	themeSelect.SetSelected(cfg.Theme)

	catalogEntry := widget.NewEntry()
	catalogEntry.SetPlaceHolder("TOML vendor overrides (applied on restart)")
	catalogEntry.SetText(cfg.CatalogPath)
	catalogEntry.OnChanged = func(path string) { cfg.CatalogPath = strings.TrimSpace(path) }

	items := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Catalog Overrides", catalogEntry),
		widget.NewFormItem("", widget.NewLabelWithStyle("New project defaults", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})),
		widget.NewFormItem("Devices", boundedIntEntry(&cfg.DefaultDevices, 1, 10_000_000)),
		widget.NewFormItem("Years", boundedIntEntry(&cfg.DefaultYears, model.MinYears, model.MaxYears)),
		widget.NewFormItem("Industry", industrySelect),
		widget.NewFormItem("Region", regionSelect),
		widget.NewFormItem("FTE Salary", salaryEntry),
		widget.NewFormItem("Baseline", baselineSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		a.config = cfg
		a.fyneApp.Settings().SetTheme(ThemeForPreference(cfg.Theme))
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
		}
	}, a.window)
	d.Resize(fyne.NewSize(520, 500))
	d.Show()
}

// saveConfig writes the app config to its default location.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

// ─── Backup ────────────────────────────────────────────────

func (a *App) showImportExportDialog() {
	content := container.NewVBox(
		widget.NewLabel("Back up settings and user templates to one file,\nor restore them from an earlier backup."),
		widget.NewSeparator(),
		widget.NewButton("Export Backup...", a.exportBackup),
		widget.NewButton("Restore Backup...", func() {
			dialog.ShowConfirm("Restore Backup",
				"Restoring replaces your settings and saved templates.\nContinue?",
				func(ok bool) {
					if ok {
						a.restoreBackup()
					}
				}, a.window)
		}),
	)
	d := dialog.NewCustom("Backup", "Close", content, a.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

func (a *App) exportBackup() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			return
		}
		path := w.URI().Path()
		w.Close()
		if err := project.ExportAllData(path, a.config, a.templates); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Backup Saved", "Settings and templates written to:\n"+path, a.window)
	}, a.window)
	d.SetFileName("tcocompare-backup.json")
	d.Show()
}

func (a *App) restoreBackup() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		path := r.URI().Path()
		r.Close()

		backup, err := project.ImportAllData(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.applyBackup(backup); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Backup Restored",
			fmt.Sprintf("Restored %d user templates from the backup of %s.",
				len(backup.Templates), backup.CreatedAt), a.window)
	}, a.window)
}

// applyBackup replaces config and templates, persists both and refreshes the
// widgets that show them.
func (a *App) applyBackup(backup project.BackupData) error {
	a.config = backup.Config
	a.templates = backup.TemplateStore()
	if err := a.saveConfig(); err != nil {
		return fmt.Errorf("failed to save restored settings: %w", err)
	}
	if err := project.SaveDefaultTemplates(a.templates); err != nil {
		return fmt.Errorf("failed to save restored templates: %w", err)
	}
	a.fyneApp.Settings().SetTheme(ThemeForPreference(a.config.Theme))
	a.templateSelect.Options = a.templates.Names()
	a.templateSelect.Refresh()
	a.refreshRecentMenu()
	return nil
}
