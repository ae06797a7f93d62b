package view

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Period is a predefined or custom date range.
type Period int

const (
	PeriodThisWeek Period = iota
	PeriodLastWeek
	PeriodThisMonth
	PeriodLastMonth
	PeriodAll
	PeriodCustom
)

func (p Period) String() string {
	switch p {
	case PeriodThisWeek:
		return "Esta semana"
	case PeriodLastWeek:
		return "Semana passada"
	case PeriodThisMonth:
		return "Este mês"
	case PeriodLastMonth:
		return "Mês passado"
	case PeriodAll:
		return "Tudo"
	case PeriodCustom:
		return "Personalizado"
	}

	return "Desconhecido"
}

// periodRange resolves a preset relative to now. Weeks start on Monday.
func periodRange(p Period, now time.Time) (start, end time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sinceMonday := (int(today.Weekday()) + 6) % 7

	switch p {
	case PeriodThisWeek:
		return today.AddDate(0, 0, -sinceMonday), today
	case PeriodLastWeek:
		start = today.AddDate(0, 0, -sinceMonday-7)
		return start, start.AddDate(0, 0, 6)
	case PeriodThisMonth:
		return today.AddDate(0, 0, 1-today.Day()), today
	case PeriodLastMonth:
		start = today.AddDate(0, 0, 1-today.Day()).AddDate(0, -1, 0)
		return start, start.AddDate(0, 1, -1)
	}

	return time.Time{}, time.Time{}
}

// PeriodSelectedMsg is emitted once a range is chosen. Start and End are zero
// when All is set.
type PeriodSelectedMsg struct {
	Start time.Time
	End   time.Time
	All   bool
}

// periodValues is shared by the form fields and every copy of the picker.
type periodValues struct {
	period Period
	start  string
	end    string
}

// PeriodPicker asks for a preset and, for PeriodCustom, two dates.
type PeriodPicker struct {
	form *huh.Form
	vals *periodValues
	now  func() time.Time
}

func NewPeriodPicker() PeriodPicker {
	vals := &periodValues{period: PeriodThisMonth}

	return PeriodPicker{form: buildPeriodForm(vals), vals: vals, now: time.Now}
}

func buildPeriodForm(v *periodValues) *huh.Form {
	options := make([]huh.Option[Period], 0, PeriodCustom+1)
	for i := PeriodThisWeek; i <= PeriodCustom; i++ {
		options = append(options, huh.NewOption(i.String(), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Period]().
				Title("Período").
				Options(options...).
				Value(&v.period),
		),
		huh.NewGroup(
			huh.NewInput().Title("Início").Placeholder("DD/MM/AAAA").Value(&v.start).Validate(validDate),
			huh.NewInput().Title("Fim").Placeholder("DD/MM/AAAA").Value(&v.end).Validate(validDate),
		).WithHideFunc(func() bool { return v.period != PeriodCustom }),
	).WithWidth(40).WithShowHelp(false)
}

func validDate(s string) error {
	if _, err := time.Parse("02/01/2006", s); err != nil {
		return errors.New("use DD/MM/AAAA")
	}

	return nil
}

func (p PeriodPicker) Init() tea.Cmd {
	return p.form.Init()
}

func (p PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State != huh.StateCompleted {
		return p, cmd
	}

	return p, p.selected
}

func (p PeriodPicker) selected() tea.Msg {
	switch p.vals.period {
	case PeriodAll:
		return PeriodSelectedMsg{All: true}
	case PeriodCustom:
		start, _ := time.Parse("02/01/2006", p.vals.start)
		end, _ := time.Parse("02/01/2006", p.vals.end)

		return PeriodSelectedMsg{Start: start, End: end}
	}

	start, end := periodRange(p.vals.period, p.now())

	return PeriodSelectedMsg{Start: start, End: end}
}

func (p PeriodPicker) View() string {
	return p.form.View()
}
