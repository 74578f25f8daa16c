package session

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/match"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}

	switch s.sess.Phase {
	case quiz.PhaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderStatus shows position, score, and the progress bar.
func (s *SessionScreen) renderStatus(width int) string {
	current := s.sess.Index + 1
	total := s.sess.Length()
	if current > total {
		current = total
	}

	bar := components.ProgressBar{
		Percent: float64(current) / float64(total),
		Width:   min(width-8, 60),
	}

	status := fmt.Sprintf("Question %d of %d    Score: %d    %s / %s",
		current, total, s.sess.Score, s.sess.Topic, s.sess.Level)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render(status))
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.sess.Current()
	if q == nil {
		return ""
	}

	card := theme.Card.Width(min(width-8, 76)).Render(
		theme.Body.Render(q.Problem))

	return "\n" + s.renderStatus(width) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View())
}

func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.sess.Pending
	if fb == nil {
		return ""
	}

	style := theme.Incorrect
	switch fb.Result.Tier {
	case match.TierCorrect:
		style = theme.Correct
	case match.TierPartial:
		style = theme.Partial
	}

	body := style.Render(fb.Message)
	if fb.Solution != "" {
		body += "\n\n" + theme.Body.Render(fb.Solution)
	}
	if fb.RecommendedLevel != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Suggested next level: "+fb.RecommendedLevel)
	}
	if fb.Warning != "" {
		body += "\n\n" + theme.Hint.Render(fb.Warning)
	}

	card := theme.Card.Width(min(width-8, 76)).Render(body)

	return "\n" + s.renderStatus(width) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Press any key to continue"))
}

func renderQuitConfirm(width int) string {
	card := theme.Card.Render(
		theme.Body.Render("Abandon this quiz?") + "\n\n" +
			theme.Hint.Render("Progress in this session will be lost."))
	return "\n\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
