package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// ErrSelectionCancelled is returned when the user leaves a selector without choosing
var ErrSelectionCancelled = errors.New("selection cancelled")

const (
	pickerRows   = 8  // visible groups
	pickerLabel  = 16 // width of the detail labels
	pickerDetail = 7  // detail lines, kept constant so the box does not jump
)

// PolicyLister loads the scaling policies attached to a group
type PolicyLister func(group string) ([]pkgtypes.ScalingPolicy, error)

type policiesLoaded struct {
	group    string
	policies []pkgtypes.ScalingPolicy
	err      error
}

// GroupPicker is the bubbletea model used to pick a provisioned group.
// The detail pane shows the resources the group was provisioned with and,
// when a PolicyLister is set, its scaling policies.
type GroupPicker struct {
	groups  []pkgtypes.AutoScalingGroup
	visible []pkgtypes.AutoScalingGroup
	cursor  int
	offset  int
	query   string

	chosen    *pkgtypes.AutoScalingGroup
	done      bool
	cancelled bool

	width     int
	nameWidth int

	listPolicies PolicyLister
	policies     map[string]policiesLoaded
}

// NewGroupPicker creates a picker over groups. lister may be nil.
func NewGroupPicker(groups []pkgtypes.AutoScalingGroup, lister PolicyLister) GroupPicker {
	nameWidth := 24
	for _, g := range groups {
		nameWidth = max(nameWidth, runewidth.StringWidth(g.Name))
	}

	m := GroupPicker{
		groups:       groups,
		visible:      groups,
		nameWidth:    nameWidth,
		listPolicies: lister,
		policies:     make(map[string]policiesLoaded),
	}
	m.resize(80)
	return m
}

// name, capacity column and instance column
func (m *GroupPicker) resize(termWidth int) {
	m.width = max(termWidth-2, minWidth, m.nameWidth+3+2+14+2+10)
}

func (m GroupPicker) current() (pkgtypes.AutoScalingGroup, bool) {
	if len(m.visible) == 0 {
		return pkgtypes.AutoScalingGroup{}, false
	}
	return m.visible[m.cursor], true
}

// loadPolicies fetches the policies of the highlighted group once
func (m GroupPicker) loadPolicies() tea.Cmd {
	g, ok := m.current()
	if !ok || m.listPolicies == nil {
		return nil
	}
	if _, cached := m.policies[g.Name]; cached {
		return nil
	}

	list, name := m.listPolicies, g.Name
	return func() tea.Msg {
		policies, err := list(name)
		return policiesLoaded{group: name, policies: policies, err: err}
	}
}

// Init implements tea.Model
func (m GroupPicker) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), m.loadPolicies())
}

// Update implements tea.Model
func (m GroupPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case policiesLoaded:
		m.policies[msg.group] = msg
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done, m.cancelled = true, true
			return m, tea.Quit

		case tea.KeyEnter:
			if g, ok := m.current(); ok {
				m.chosen = &g
				m.done = true
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyUp:
			m.move(-1)
		case tea.KeyDown:
			m.move(1)

		case tea.KeyBackspace:
			if m.query == "" {
				return m, nil
			}
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.filter()

		case tea.KeyRunes:
			m.query += string(msg.Runes)
			m.filter()

		default:
			return m, nil
		}
		return m, m.loadPolicies()
	}

	return m, nil
}

func (m *GroupPicker) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.visible)-1, 0))
	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+pickerRows:
		m.offset = m.cursor - pickerRows + 1
	}
}

func (m *GroupPicker) filter() {
	m.visible = m.groups
	if m.query != "" {
		query := strings.ToLower(m.query)
		m.visible = nil
		for _, g := range m.groups {
			if matchesGroup(g, query) {
				m.visible = append(m.visible, g)
			}
		}
	}
	m.cursor, m.offset = 0, 0
}

// matchesGroup reports whether the group name, launch configuration,
// one of its load balancers or the Name tag contains query
func matchesGroup(g pkgtypes.AutoScalingGroup, query string) bool {
	fields := append([]string{g.Name, g.LaunchConfiguration, g.Tags["Name"]}, g.LoadBalancers...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// View implements tea.Model
func (m GroupPicker) View() string {
	if m.done {
		return ""
	}

	f := &frame{width: m.width}
	f.border(TopLeft, TopRight)
	f.line(" / "+m.query, NameStyle)
	f.blank()

	for i := m.offset; i < m.offset+pickerRows; i++ {
		if i < len(m.visible) {
			f.raw(m.row(i))
		} else {
			f.blank()
		}
	}

	f.border(LeftT, RightT)
	m.details(f)
	f.border(BottomLeft, BottomRight)

	count := fmt.Sprintf("  %d/%d groups", len(m.visible), len(m.groups))
	hints := "[↑↓:move] [Enter:select] [Esc:cancel]"
	gap := max(m.width+2-runewidth.StringWidth(count)-runewidth.StringWidth(hints), 1)
	f.sb.WriteString(count + strings.Repeat(" ", gap) + HintStyle.Render(hints) + "\n")

	return f.sb.String()
}

func (m GroupPicker) row(i int) (string, int) {
	g := m.visible[i]

	marker := "   "
	if i == m.cursor {
		marker = " > "
	}
	capacity := fmt.Sprintf("%d of %d-%d", g.DesiredCapacity, g.MinSize, g.MaxSize)
	instances := fmt.Sprintf("%d/%d ok", g.HealthyCount, g.InstanceCount)

	text := marker +
		NameStyle.Render(padRight(g.Name, m.nameWidth)) + "  " +
		TypeStyle.Render(padRight(capacity, 14)) + "  " +
		healthCell(g.HealthyCount, g.InstanceCount).Style.Render(instances)
	return text, 3 + m.nameWidth + 2 + 14 + 2 + runewidth.StringWidth(instances)
}

func (m GroupPicker) details(f *frame) {
	g, ok := m.current()
	if !ok {
		f.line(" No provisioned groups match", MutedStyle)
		for range pickerDetail - 1 {
			f.blank()
		}
		return
	}

	targets := "-"
	if n := len(g.TargetGroupARNs); n > 0 {
		targets = fmt.Sprintf("%d attached", n)
	}

	rows := []detail{
		{"Launch Config:", formatOptional(g.LaunchConfiguration)},
		{"Load Balancers:", formatOptional(strings.Join(g.LoadBalancers, ", "))},
		{"Target Groups:", targets},
		{"Health Check:", fmt.Sprintf("%s, %ds grace", formatOptional(g.HealthCheckType), g.HealthCheckPeriod)},
		{"Name Tag:", formatOptional(g.Tags["Name"])},
		{"Zones:", formatOptional(strings.Join(g.AZs, ", "))},
		{"Policies:", m.policySummary(g.Name)},
	}
	for _, d := range rows {
		label := MutedStyle.Render(" " + padRight(d.label, pickerLabel))
		f.raw(label+NameStyle.Render(d.value), 1+pickerLabel+runewidth.StringWidth(d.value))
	}
}

func (m GroupPicker) policySummary(group string) string {
	if m.listPolicies == nil {
		return "-"
	}
	loaded, ok := m.policies[group]
	switch {
	case !ok:
		return "loading..."
	case loaded.err != nil:
		return "unavailable: " + loaded.err.Error()
	case len(loaded.policies) == 0:
		return "none"
	}

	parts := make([]string, 0, len(loaded.policies))
	for _, p := range loaded.policies {
		parts = append(parts, fmt.Sprintf("%s %+d", p.Name, p.Adjustment))
	}
	return strings.Join(parts, ", ")
}

// Selected returns the chosen group, nil until Enter was pressed
func (m GroupPicker) Selected() *pkgtypes.AutoScalingGroup {
	return m.chosen
}

// frame draws the vertical borders of a fixed-width box
type frame struct {
	sb    strings.Builder
	width int
}

func (f *frame) border(left, right string) {
	f.sb.WriteString(BorderStyle.Render(left + strings.Repeat(Horizontal, f.width) + right))
	f.sb.WriteString("\n")
}

func (f *frame) line(text string, style lipgloss.Style) {
	f.raw(style.Render(text), runewidth.StringWidth(text))
}

func (f *frame) blank() {
	f.raw("", 0)
}

// raw writes already styled text whose printable width is plain
func (f *frame) raw(text string, plain int) {
	f.sb.WriteString(BorderStyle.Render(Vertical))
	f.sb.WriteString(text)
	if plain < f.width {
		f.sb.WriteString(strings.Repeat(" ", f.width-plain))
	}
	f.sb.WriteString(BorderStyle.Render(Vertical))
	f.sb.WriteString("\n")
}

// SelectGroup lets the user pick one of groups interactively
func SelectGroup(groups []pkgtypes.AutoScalingGroup, lister PolicyLister) (*pkgtypes.AutoScalingGroup, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no auto scaling groups in this region")
	}

	final, err := tea.NewProgram(NewGroupPicker(groups, lister)).Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := final.(GroupPicker)
	if result.cancelled {
		return nil, ErrSelectionCancelled
	}
	return result.chosen, nil
}
