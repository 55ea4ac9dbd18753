package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aslanbek/kazlearn/internal/practice"
	"github.com/aslanbek/kazlearn/internal/ui/theme"
)

// renderQuestion renders the active word prompt and answer input.
func (s *SessionScreen) renderQuestion(width int) string {
	word := s.ctrl.CurrentWord()
	if word == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.ctrl.Paused() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Paused"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Ctrl+P to resume"))
		return b.String()
	}

	prompt := word.Prompt
	if word.IsReview {
		prompt += "  " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("(review)")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n")

	if word.Pronunciation != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("[" + word.Pronunciation + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Translation: " + s.input.View())
	b.WriteString(answerLine)

	if s.notice != "" {
		color := theme.TextDim
		if s.noticeIsErr {
			color = theme.Error
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(color).
			Render(s.notice))
	}

	return b.String()
}

// renderReveal renders feedback for the most recent answer.
func (s *SessionScreen) renderReveal(width int) string {
	word := s.ctrl.CurrentWord()
	res := s.ctrl.LastResult()
	if word == nil || res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Дұрыс! Correct!"))
	} else {
		verdict := "Not quite"
		if res.Submitted == practice.SkippedAnswer {
			verdict = "Skipped"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(verdict))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s means %q", word.Prompt, word.Answer)))
	}
	b.WriteString("\n\n")

	var details []string
	if word.Cyrillic != "" && word.Cyrillic != word.Prompt {
		details = append(details, "Cyrillic: "+word.Cyrillic)
	}
	if word.Pronunciation != "" {
		details = append(details, "Say: "+word.Pronunciation)
	}
	details = append(details, fmt.Sprintf("Seen %d times", word.TimesSeen+1))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(strings.Join(details, "    ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to continue..."))

	return b.String()
}

// renderInfoLine renders the progress, score and timer line.
func (s *SessionScreen) renderInfoLine(width int) string {
	correct := 0
	for _, r := range s.ctrl.Results() {
		if r.Correct {
			correct++
		}
	}

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  Word %d/%d", min(s.ctrl.CurrentIndex()+1, s.ctrl.WordCount()), s.ctrl.WordCount()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			correct,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			mins, secs,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderQuitConfirm renders the leave confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave practice early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers already submitted are kept."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Picking your words...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
