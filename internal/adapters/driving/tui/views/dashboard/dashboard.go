// Package dashboard provides the scheduling page of the TUI: the auth
// indicator, the scheduling form with its AI assist, and the schedule table.
package dashboard

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/components/controls"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// Ensure View implements the form surface.
var _ driven.ScheduleForm = (*View)(nil)

// Privacy options accepted by the service.
var privacyOptions = []string{"private", "unlisted", "public"}

// DefaultCategory is YouTube's "People & Blogs".
const DefaultCategory = "22"

// Field indexes in focus order.
const (
	fieldSummary = iota
	fieldTitle
	fieldDescription
	fieldTags
	fieldPrivacy
	fieldCategory
	fieldScheduledAt
	fieldMedia
	fieldCount
)

// View is the scheduling page.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	dashboard driving.Dashboard
	location  *time.Location

	indicator *controls.Indicator
	alert     *controls.Alert
	auth      *controls.Button
	submit    *controls.Button
	generate  *controls.Button
	spinner   spinner.Model

	fields  [fieldCount]input.Field
	focused int

	table *list.ScheduleTable
	bar   *status.Bar

	width  int
	height int
}

// NewView creates the page. Times typed into the form are read in loc.
func NewView(s *styles.Styles, km *keymap.KeyMap, loc *time.Location) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if loc == nil {
		loc = time.Local
	}

	v := &View{
		styles:    s,
		keymap:    km,
		location:  loc,
		indicator: controls.NewIndicator(s),
		alert:     controls.NewAlert(s),
		auth:      controls.NewButton(s, "Authenticate", km.Authenticate.Help().Key),
		submit:    controls.NewButton(s, "Schedule", km.Submit.Help().Key),
		generate:  controls.NewButton(s, "Generate", km.Generate.Help().Key),
		spinner:   controls.NewSpinner(s),
		table:     list.NewScheduleTable(s),
		bar:       status.NewBar(s, km),
		width:     80,
		height:    24,
	}
	v.auth.SetVisible(false)

	v.fields = [fieldCount]input.Field{
		fieldSummary:     input.NewAreaField(s, "Summary", "What is the video about?", 3),
		fieldTitle:       input.NewTextField(s, "Title", "", ""),
		fieldDescription: input.NewAreaField(s, "Description", "", 4),
		fieldTags:        input.NewTextField(s, "Tags", "tag1, tag2", ""),
		fieldPrivacy:     input.NewChoiceField(s, "Privacy", privacyOptions, privacyOptions[0]),
		fieldCategory:    input.NewTextField(s, "Category", DefaultCategory, DefaultCategory),
		fieldScheduledAt: input.NewTextField(s, "Scheduled for", domain.ScheduleInputLayout, ""),
		fieldMedia:       input.NewTextField(s, "Video file", "/path/to/video.mp4", ""),
	}
	v.fields[v.focused].Focus()

	return v
}

// Surfaces returns the page elements the dashboard renders into.
func (v *View) Surfaces() driven.Surfaces {
	return driven.Surfaces{
		Indicator:       v.indicator,
		Notifications:   v.bar,
		Table:           v.table,
		Form:            v,
		Alerter:         v.alert,
		AuthTrigger:     v.auth,
		SubmitTrigger:   v.submit,
		GenerateTrigger: v.generate,
	}
}

// SetDashboard binds the dashboard driving this page.
func (v *View) SetDashboard(d driving.Dashboard) {
	v.dashboard = d
}

// SetLocation sets the zone typed times are read in.
func (v *View) SetLocation(loc *time.Location) {
	if loc != nil {
		v.location = loc
	}
}

// Request snapshots the form.
func (v *View) Request() domain.ScheduleRequest {
	return domain.ScheduleRequest{
		Title:       v.fields[fieldTitle].Value(),
		Description: v.fields[fieldDescription].Value(),
		Tags:        v.fields[fieldTags].Value(),
		Privacy:     v.fields[fieldPrivacy].Value(),
		Category:    strings.TrimSpace(v.fields[fieldCategory].Value()),
		ScheduledAt: v.parseScheduledAt(v.fields[fieldScheduledAt].Value()),
		MediaPath:   strings.TrimSpace(v.fields[fieldMedia].Value()),
	}
}

// parseScheduledAt returns the zero time for input it cannot read.
func (v *View) parseScheduledAt(value string) time.Time {
	t, err := domain.ParseScheduleTime(value, v.location)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Reset clears every field.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Reset()
	}
}

// ApplyContent writes generated metadata into the form verbatim.
func (v *View) ApplyContent(content domain.GeneratedContent) {
	v.fields[fieldTitle].SetValue(content.Title)
	v.fields[fieldDescription].SetValue(content.Description)
	v.fields[fieldTags].SetValue(content.Tags)
}

// Summary returns the AI assist summary.
func (v *View) Summary() string {
	return v.fields[fieldSummary].Value()
}

// Field returns the form field at index i, in focus order.
func (v *View) Field(i int) input.Field {
	return v.fields[i]
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// Alert returns the page's alert dialog.
func (v *View) Alert() *controls.Alert {
	return v.alert
}

// Notifications returns the notification bar.
func (v *View) Notifications() *status.Bar {
	return v.bar
}

// Table returns the schedule table.
func (v *View) Table() *list.ScheduleTable {
	return v.table
}

// Indicator returns the auth indicator.
func (v *View) Indicator() *controls.Indicator {
	return v.indicator
}

// Buttons returns the authenticate, submit and generate triggers.
func (v *View) Buttons() (auth, submit, generate *controls.Button) {
	return v.auth, v.submit, v.generate
}

// Init starts the spinner.
func (v *View) Init() tea.Cmd {
	return controls.Tick(v.spinner)
}

// Update handles messages for the page.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.alert.Open() {
		if key.Matches(msg, v.keymap.Dismiss) {
			v.alert.Dismiss()
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keymap.Submit):
		v.trigger(v.submit, "schedule", driving.Dashboard.Submit)
		return v, nil
	case key.Matches(msg, v.keymap.Generate):
		v.trigger(v.generate, "generate", driving.Dashboard.Generate)
		return v, nil
	case key.Matches(msg, v.keymap.Authenticate):
		v.trigger(v.auth, "authenticate", driving.Dashboard.Authenticate)
		return v, nil
	case key.Matches(msg, v.keymap.Refresh):
		if v.dashboard != nil {
			v.dashboard.RefreshAuth()
			v.dashboard.RefreshList()
		}
		return v, nil
	case key.Matches(msg, v.keymap.NextField):
		return v, v.focus((v.focused + 1) % fieldCount)
	case key.Matches(msg, v.keymap.PrevField):
		return v, v.focus((v.focused + fieldCount - 1) % fieldCount)
	case msg.Type == tea.KeyPgUp:
		v.table.ScrollUp()
		return v, nil
	case msg.Type == tea.KeyPgDown:
		v.table.ScrollDown()
		return v, nil
	}

	return v, v.fields[v.focused].Update(msg)
}

// trigger presses button if it is active. Locked buttons ignore presses.
func (v *View) trigger(button *controls.Button, name string, press func(driving.Dashboard) error) {
	if v.dashboard == nil || !button.Active() {
		return
	}
	if err := press(v.dashboard); err != nil {
		if errors.Is(err, domain.ErrOperationInProgress) {
			logger.Debug("%s: %v", name, err)
			return
		}
		logger.Warn("%s: %v", name, err)
	}
}

func (v *View) focus(i int) tea.Cmd {
	v.fields[v.focused].Blur()
	v.focused = i
	return v.fields[v.focused].Focus()
}

// View renders the page.
func (v *View) View() string {
	if v.alert.Open() {
		return v.alert.View(v.width, v.height)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		v.styles.Title.Render("postador"),
		"   ",
		v.indicator.View(),
		"  ",
		v.auth.View(v.spinner.View()),
	)

	assist := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Subtitle.Render("AI assist"),
		v.fields[fieldSummary].View(),
		v.generate.View(v.spinner.View()),
	)

	formLines := []string{v.styles.Subtitle.Render("Schedule a video")}
	for i := fieldTitle; i < fieldCount; i++ {
		formLines = append(formLines, v.fields[i].View())
	}
	formLines = append(formLines, v.submit.View(v.spinner.View()))
	form := lipgloss.JoinVertical(lipgloss.Left, formLines...)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		assist,
		"",
		form,
		"",
		v.table.View(),
		v.bar.View(),
	)
}

// SetDimensions sets the page dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(width)
	}
	// Form and header take most of the screen; the table gets the rest.
	tableHeight := height - 30
	if tableHeight < 6 {
		tableHeight = 6
	}
	v.table.SetDimensions(width, tableHeight)
	v.bar.SetWidth(width)
}
