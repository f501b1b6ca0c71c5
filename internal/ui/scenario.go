package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
	"github.com/piwi3910/tcocompare/internal/project"
)

// scenarioInputs is the raw text of the scenario form.
type scenarioInputs struct {
	Name        string
	Devices     string
	Years       string
	Industry    string // industry ID
	Region      string
	RiskProfile string
	Insurance   string
	Salary      string // blank = region average
	Vendors     []string
	Baseline    string
	Priorities  []string
}

// inputsFromScenario renders s as form text.
func inputsFromScenario(s model.Scenario) scenarioInputs {
	in := scenarioInputs{
		Name:        s.Name,
		Devices:     strconv.Itoa(s.Devices),
		Years:       strconv.Itoa(s.Years),
		Industry:    s.Industry,
		Region:      s.Region,
		RiskProfile: s.RiskProfile,
		Insurance:   s.Insurance,
		Vendors:     append([]string(nil), s.VendorIDs...),
		Baseline:    s.BaselineVendorID,
	}
	if s.AvgFTESalary > 0 {
		in.Salary = strconv.FormatFloat(s.AvgFTESalary, 'f', -1, 64)
	}
	for _, p := range s.Priorities {
		in.Priorities = append(in.Priorities, string(p))
	}
	return in
}

// parseScenarioInputs applies the form text to a copy of base, keeping its ID.
func parseScenarioInputs(base model.Scenario, in scenarioInputs) (model.Scenario, error) {
	s := base.Clone()
	s.Name = strings.TrimSpace(in.Name)

	devices, err := strconv.Atoi(strings.TrimSpace(in.Devices))
	if err != nil {
		return s, goerr.Wrap(model.ErrInvalidScenario, "devices must be a whole number",
			goerr.V("field", "devices"), goerr.V("value", in.Devices))
	}
	years, err := strconv.Atoi(strings.TrimSpace(in.Years))
	if err != nil {
		return s, goerr.Wrap(model.ErrInvalidScenario, "years must be a whole number",
			goerr.V("field", "years"), goerr.V("value", in.Years))
	}
	s.Devices = devices
	s.Years = years

	s.AvgFTESalary = 0
	if salary := strings.TrimSpace(strings.ReplaceAll(in.Salary, ",", "")); salary != "" {
		v, err := strconv.ParseFloat(strings.TrimPrefix(salary, "$"), 64)
		if err != nil {
			return s, goerr.Wrap(model.ErrInvalidScenario, "salary must be a number",
				goerr.V("field", "avg_fte_salary"), goerr.V("value", in.Salary))
		}
		s.AvgFTESalary = v
	}

	s.Industry = in.Industry
	s.Region = in.Region
	s.RiskProfile = in.RiskProfile
	s.Insurance = in.Insurance
	s.VendorIDs = append([]string(nil), in.Vendors...)
	s.BaselineVendorID = in.Baseline

	s.Priorities = nil
	for _, p := range in.Priorities {
		s.Priorities = append(s.Priorities, model.Priority(p))
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// labelIndex maps display names to catalog IDs and back.
type labelIndex struct {
	labels []string
	toID   map[string]string
	toName map[string]string
}

func newLabelIndex() labelIndex {
	return labelIndex{toID: map[string]string{}, toName: map[string]string{}}
}

func (li *labelIndex) add(id, name string) {
	li.labels = append(li.labels, name)
	li.toID[name] = id
	li.toName[id] = name
}

func (li labelIndex) names(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := li.toName[id]; ok {
			out = append(out, name)
		}
	}
	return out
}

func (li labelIndex) ids(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if id, ok := li.toID[n]; ok {
			out = append(out, id)
		}
	}
	return out
}

func vendorIndex(cat *catalog.Catalog) labelIndex {
	li := newLabelIndex()
	for _, v := range cat.Vendors() {
		li.add(v.ID, v.Name)
	}
	return li
}

func industryIndex(cat *catalog.Catalog) labelIndex {
	li := newLabelIndex()
	for _, ind := range cat.Industries() {
		li.add(ind.ID, ind.Name)
	}
	return li
}

// scenarioForm holds the widgets of the Scenario tab.
type scenarioForm struct {
	vendors    labelIndex
	industries labelIndex

	name       *widget.Entry
	devices    *widget.Entry
	years      *widget.Entry
	industry   *widget.Select
	region     *widget.Select
	risk       *widget.Select
	insurance  *widget.Select
	salary     *widget.Entry
	vendorList *widget.CheckGroup
	baseline   *widget.Select
	priorities *widget.CheckGroup
	notes      *widget.Entry
}

func newScenarioForm(cat *catalog.Catalog) *scenarioForm {
	f := &scenarioForm{
		vendors:    vendorIndex(cat),
		industries: industryIndex(cat),
	}
	f.name = widget.NewEntry()
	f.devices = widget.NewEntry()
	f.years = widget.NewEntry()
	f.industry = widget.NewSelect(f.industries.labels, nil)
	f.region = widget.NewSelect(cat.Regions(), nil)
	f.risk = widget.NewSelect(cat.RiskProfiles(), nil)
	f.insurance = widget.NewSelect(cat.InsuranceTiers(), nil)
	f.salary = widget.NewEntry()
	f.salary.SetPlaceHolder("Region average")
	f.vendorList = widget.NewCheckGroup(f.vendors.labels, nil)
	f.baseline = widget.NewSelect(f.vendors.labels, nil)

	priorities := make([]string, 0, 4)
	for _, p := range model.AllPriorities() {
		priorities = append(priorities, string(p))
	}
	f.priorities = widget.NewCheckGroup(priorities, nil)
	f.priorities.Horizontal = true

	f.notes = widget.NewMultiLineEntry()
	f.notes.SetPlaceHolder("Notes saved with the project")
	f.notes.Wrapping = fyne.TextWrapWord
	return f
}

// load fills the widgets from s.
func (f *scenarioForm) load(s model.Scenario, notes string) {
	in := inputsFromScenario(s)
	f.name.SetText(in.Name)
	f.devices.SetText(in.Devices)
	f.years.SetText(in.Years)
	f.industry.SetSelected(f.industries.toName[in.Industry])
	f.region.SetSelected(in.Region)
	f.risk.SetSelected(in.RiskProfile)
	f.insurance.SetSelected(in.Insurance)
	f.salary.SetText(in.Salary)
	f.vendorList.SetSelected(f.vendors.names(in.Vendors))
	f.baseline.SetSelected(f.vendors.toName[in.Baseline])
	f.priorities.SetSelected(in.Priorities)
	f.notes.SetText(notes)
}

// inputs reads the widgets back into form text.
func (f *scenarioForm) inputs() scenarioInputs {
	return scenarioInputs{
		Name:        f.name.Text,
		Devices:     f.devices.Text,
		Years:       f.years.Text,
		Industry:    f.industries.toID[f.industry.Selected],
		Region:      f.region.Selected,
		RiskProfile: f.risk.Selected,
		Insurance:   f.insurance.Selected,
		Salary:      f.salary.Text,
		Vendors:     f.vendors.ids(f.vendorList.Selected),
		Baseline:    f.vendors.toID[f.baseline.Selected],
		Priorities:  f.priorities.Selected,
	}
}

// ─── Scenario Panel ────────────────────────────────────────

func (a *App) buildScenarioPanel() fyne.CanvasObject {
	a.form = newScenarioForm(a.catalog)
	a.form.load(a.project.Scenario, a.project.Notes)

	calcBtn := widget.NewButtonWithIcon("Calculate", theme.MediaPlayIcon(), func() {
		a.applyForm()
	})
	calcBtn.Importance = widget.HighImportance

	templateSelect := widget.NewSelect(a.templates.Names(), func(name string) {
		a.applyTemplate(name)
	})
	templateSelect.PlaceHolder = "Load template..."
	a.templateSelect = templateSelect

	saveTemplateBtn := toolbarButton(theme.DocumentSaveIcon(), "Save scenario as template", func() {
		a.showSaveTemplateDialog()
	})
	a.undoBtn = toolbarButton(theme.ContentUndoIcon(), "", a.undo)
	a.redoBtn = toolbarButton(theme.ContentRedoIcon(), "Redo scenario change", a.redo)
	a.refreshHistoryButtons()

	inputs := widget.NewCard("Organisation", "", widget.NewForm(
		widget.NewFormItem("Scenario Name", a.form.name),
		widget.NewFormItem("Devices", a.form.devices),
		widget.NewFormItem("Analysis Years (1-10)", a.form.years),
		widget.NewFormItem("Industry", a.form.industry),
		widget.NewFormItem("Region", a.form.region),
		widget.NewFormItem("Loaded FTE Salary", a.form.salary),
		widget.NewFormItem("Risk Profile", a.form.risk),
		widget.NewFormItem("Cyber Insurance", a.form.insurance),
	))

	vendors := widget.NewCard("Vendors", "Select the products to compare", container.NewVBox(
		a.form.vendorList,
		widget.NewForm(widget.NewFormItem("Baseline", a.form.baseline)),
	))

	priorities := widget.NewCard("Priorities", "Weights used for recommendations", a.form.priorities)
	notes := widget.NewCard("Notes", "", a.form.notes)

	toolbar := container.NewHBox(
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		templateSelect,
		saveTemplateBtn,
		a.undoBtn,
		a.redoBtn,
		calcBtn,
	)

	return container.NewBorder(toolbar, nil, nil, nil,
		container.NewVScroll(container.NewVBox(
			container.NewGridWithColumns(2, inputs, vendors),
			priorities,
			notes,
		)),
	)
}

// toolbarButton is an icon-only button with a hover tooltip.
func toolbarButton(icon fyne.Resource, tip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.Importance = widget.LowImportance
	btn.SetToolTip(tip)
	return btn
}

// refreshHistoryButtons names the pending undo step and disables buttons
// with nothing to do.
func (a *App) refreshHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	if label := a.history.UndoLabel(); label != "" {
		a.undoBtn.SetToolTip("Undo " + label)
	} else {
		a.undoBtn.SetToolTip("Nothing to undo")
	}
	setEnabled(a.undoBtn, a.history.CanUndo())
	setEnabled(a.redoBtn, a.history.CanRedo())
}

func setEnabled(btn *ttwidget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

// applyForm validates the form and, when it changed, records an undo step
// and recalculates.
func (a *App) applyForm() {
	s, err := parseScenarioInputs(a.project.Scenario, a.form.inputs())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project.Notes = a.form.notes.Text
	a.setScenario(s, "Edit Scenario")
}

// applyTemplate replaces the scenario with a template, keeping the name.
func (a *App) applyTemplate(name string) {
	if name == "" {
		return
	}
	t, ok := a.templates.FindByName(name)
	if !ok {
		return
	}
	s := t.ToScenario(a.project.Scenario.Name)
	s.ID = a.project.Scenario.ID
	a.setScenario(s, "Load Template "+name)
	a.form.load(a.project.Scenario, a.project.Notes)
}

func (a *App) showSaveTemplateDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.project.Scenario.Name)
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	d := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("template name is required"), a.window)
				return
			}
			if _, exists := a.templates.FindByName(name); exists {
				dialog.ShowError(fmt.Errorf("a template named %q already exists", name), a.window)
				return
			}
			a.templates.Add(model.NewScenarioTemplate(name, descEntry.Text, a.project.Scenario))
			if err := project.SaveDefaultTemplates(a.templates); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.templateSelect.Options = a.templates.Names()
			a.templateSelect.Refresh()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(400, 200))
	d.Show()
}

func (a *App) showManageTemplatesDialog() {
	var user []model.ScenarioTemplate
	for _, t := range a.templates.Templates {
		if !t.Builtin {
			user = append(user, t)
		}
	}
	if len(user) == 0 {
		dialog.ShowInformation("Templates", "No user templates saved yet.", a.window)
		return
	}

	list := container.NewVBox()
	for _, t := range user {
		id := t.ID
		var row *fyne.Container
		row = container.NewBorder(nil, nil, nil,
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.templates.Remove(id)
				if err := project.SaveDefaultTemplates(a.templates); err != nil {
					dialog.ShowError(err, a.window)
				}
				list.Remove(row)
				a.templateSelect.Options = a.templates.Names()
				a.templateSelect.Refresh()
			}),
			widget.NewLabel(fmt.Sprintf("%s  %s", t.Name, t.Description)),
		)
		list.Add(row)
	}
	d := dialog.NewCustom("User Templates", "Close", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(450, 300))
	d.Show()
}
