// Package summary shows the end-of-session results: final score,
// per-topic accuracy, and topics that need more work.
package summary

import (
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

// Params configures the summary screen. Restart is invoked when the
// learner asks for another round with the same setup.
type Params struct {
	Topic      string
	Level      string
	Length     int
	Summary    progress.Summary
	PersistErr error
	Restart    func() tea.Msg
}

// SummaryScreen is a read-only results view.
type SummaryScreen struct {
	params Params
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)

func New(params Params) *SummaryScreen {
	return &SummaryScreen{params: params}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Same quiz again"},
		{Key: "Enter/Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		if s.params.Restart != nil {
			return s, s.params.Restart
		}
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	p := s.params

	score := fmt.Sprintf("You scored %d out of %d on %s / %s.",
		p.Summary.Score, p.Length, p.Topic, p.Level)

	body := theme.Body.Render(score) + "\n\n" + s.renderTopics(width)

	if weak := s.weakTopics(); len(weak) > 0 {
		body += "\n" + theme.Partial.Render("Topics to revisit:")
		for _, t := range weak {
			body += "\n" + theme.Body.Render("  • "+t)
		}
		body += "\n"
	}

	if p.PersistErr != nil {
		body += "\n" + theme.Hint.Render(
			"Results were not saved: "+p.PersistErr.Error())
	}

	card := theme.Card.Width(min(width-8, 76)).Render(body)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderTopics draws an accuracy bar per topic attempted this session.
func (s *SummaryScreen) renderTopics(width int) string {
	topics := make([]string, 0, len(s.params.Summary.Topics))
	for name, tally := range s.params.Summary.Topics {
		if tally.Total > 0 {
			topics = append(topics, name)
		}
	}
	sort.Strings(topics)

	var out string
	for _, name := range topics {
		tally := s.params.Summary.Topics[name]
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-22s %d/%d", name, tally.Correct, tally.Total),
			Percent:     float64(tally.Correct) / float64(tally.Total),
			ShowPercent: true,
			Width:       min(width-40, 30),
		}
		out += bar.View() + "\n"
	}
	return out
}

func (s *SummaryScreen) weakTopics() []string {
	var weak []string
	for name, tally := range s.params.Summary.Topics {
		if tally.Total == 0 {
			continue
		}
		pct := float64(tally.Correct) / float64(tally.Total) * 100
		if pct < analytics.WeakThreshold {
			weak = append(weak, name)
		}
	}
	sort.Strings(weak)
	return weak
}
