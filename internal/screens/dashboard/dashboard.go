// Package dashboard renders lifetime analytics from the progress log:
// score history across sessions, per-topic accuracy, and weak topics.
package dashboard

import (
	"errors"
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/analytics"
	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/router"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/layout"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// historyMsg carries the loaded progress log, or the load error.
type historyMsg struct {
	history []progress.Summary
	err     error
}

// DashboardScreen is a read-only analytics view.
type DashboardScreen struct {
	store   *progress.Store
	loaded  bool
	history []progress.Summary
	err     error
}

var _ router.Screen = (*DashboardScreen)(nil)
var _ router.KeyHintProvider = (*DashboardScreen)(nil)

func New(store *progress.Store) *DashboardScreen {
	return &DashboardScreen{store: store}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		history, err := d.store.ReadAll()
		return historyMsg{history: history, err: err}
	}
}

func (d *DashboardScreen) Title() string {
	return "Analytics"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		d.loaded = true
		d.history = msg.history
		d.err = msg.err
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	var body string
	switch {
	case !d.loaded:
		body = theme.Hint.Render("Loading history...")
	case errors.Is(d.err, progress.ErrNoHistory):
		body = theme.Body.Render("No analytics data yet.") + "\n" +
			theme.Hint.Render("Complete a quiz session first.")
	case d.err != nil:
		body = theme.Incorrect.Render("Could not read progress log:") + "\n" +
			theme.Hint.Render(d.err.Error())
	default:
		body = d.renderScores(width) + "\n" + d.renderTopics(width)
	}

	card := theme.Card.Width(min(width-8, 76)).Render(body)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderScores lists recent sessions oldest first, capped to the last
// ten so the card stays on screen.
func (d *DashboardScreen) renderScores(width int) string {
	series := analytics.ScoreSeries(d.history)
	start := 0
	if len(series) > 10 {
		start = len(series) - 10
	}

	out := theme.Subtitle.Render(fmt.Sprintf("Score history (%d sessions)", len(series))) + "\n"
	for _, pt := range series[start:] {
		out += theme.Body.Render(fmt.Sprintf("  %s    %d",
			pt.Timestamp.Format("2006-01-02 15:04"), pt.Score)) + "\n"
	}
	return out
}

func (d *DashboardScreen) renderTopics(width int) string {
	accuracy := analytics.PerTopicAccuracy(d.history)
	topics := make([]string, 0, len(accuracy))
	for name := range accuracy {
		topics = append(topics, name)
	}
	sort.Strings(topics)

	out := theme.Subtitle.Render("Accuracy by topic") + "\n"
	for _, name := range topics {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-22s", name),
			Percent:     accuracy[name] / 100,
			ShowPercent: true,
			Width:       min(width-40, 30),
		}
		out += bar.View() + "\n"
	}

	if weak := analytics.WeakTopics(d.history); len(weak) > 0 {
		out += "\n" + theme.Partial.Render("Needs work:")
		for _, name := range weak {
			out += " " + name
		}
		out += "\n"
	}
	return out
}
