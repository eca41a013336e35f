package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableWidths budgets column widths for the given terminal width.
// Columns: ID, Name, Username, Email, Company, Website.
func tableWidths(total int) [6]int {
	// 5 separators of 2 spaces
	usable := max(total-2-10, 40)
	id := 4
	rest := usable - id
	name := rest * 26 / 100
	username := rest * 14 / 100
	email := rest * 28 / 100
	company := rest * 18 / 100
	website := rest - name - username - email - company
	return [6]int{id, name, username, email, company, website}
}

func renderCells(cells [6]string, widths [6]int) string {
	parts := make([]string, 0, len(cells))
	for i, c := range cells {
		parts = append(parts, pad(c, widths[i]))
	}
	return " " + strings.Join(parts, "  ") + " "
}

// renderTable renders the filtered record set as rows. The header shell stays
// in place even when the body is empty, whether from an empty source set or
// an exhausting filter.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	users := m.snapshot.Filtered()
	widths := tableWidths(m.width)
	contentHeight := max(m.height-4, 3) // header, command bar, search line, count line

	var lines []string
	lines = append(lines, styles.MutedText.Bold(true).Render(
		renderCells([6]string{"ID", "NAME", "USERNAME", "EMAIL", "COMPANY", "WEBSITE"}, widths)))
	lines = append(lines, styles.FaintText.Render(strings.Repeat("─", max(m.width, 1))))

	for i, u := range users {
		row := renderCells([6]string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Username,
			u.Email,
			u.Company.Name,
			u.Website,
		}, widths)
		if i == m.cursor {
			lines = append(lines, styles.Selected.Width(m.width).Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}

	for len(lines) < contentHeight-1 {
		lines = append(lines, "")
	}
	lines = append(lines, styles.MutedText.Render(" "+countLabel(len(users), len(m.snapshot.Users))))

	return strings.Join(lines, "\n")
}

// countLabel is the "visible of total" footer message.
func countLabel(visible, total int) string {
	noun := "users"
	if total == 1 {
		noun = "user"
	}
	if visible == total {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d of %d %s", visible, total, noun)
}

// renderLoading renders the pending state.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	return lipgloss.Place(
		m.width,
		max(m.height-4, 1),
		lipgloss.Center,
		lipgloss.Center,
		styles.WarningText.Render("Loading directory…"),
	)
}

// renderError renders the failed state. It replaces the table entirely; there
// is no retry affordance.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	reason := "request failed"
	if m.snapshot.FetchErr != nil {
		reason = m.snapshot.FetchErr.Error()
	}
	msg := styles.DangerText.Render("Could not load the directory") + "\n" +
		styles.Text.Render(truncate(reason, max(m.width-8, 20)))
	return lipgloss.Place(
		m.width,
		max(m.height-4, 1),
		lipgloss.Center,
		lipgloss.Center,
		msg,
	)
}
