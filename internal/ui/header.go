package ui

import (
	"fmt"
	"strings"

	"github.com/davrell/roster/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("roster")}

	switch m.snapshot.Status {
	case state.StatusPending:
		parts = append(parts, styles.WarningText.Bold(true).Render("Loading…"))

	case state.StatusFailed:
		reason := "request failed"
		if m.snapshot.FetchErr != nil {
			reason = m.snapshot.FetchErr.Error()
		}
		parts = append(parts,
			styles.DangerText.Render("LOAD FAILED"),
			styles.MutedText.Render(truncate(reason, 60)))

	default:
		visible := len(m.snapshot.Filtered())
		parts = append(parts, styles.Text.Render(countLabel(visible, len(m.snapshot.Users))))
		// Echo the active search term for user feedback
		if m.snapshot.Search != "" {
			parts = append(parts,
				styles.MutedText.Render("filter")+" "+
					styles.AccentText.Render(fmt.Sprintf("%q", truncate(m.snapshot.Search, 24))))
		}
		if !m.snapshot.LoadedAt.IsZero() {
			parts = append(parts, styles.MutedText.Render("loaded "+m.snapshot.LoadedAt.Format("15:04:05")))
		}
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the key hint bar for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.overlay.Held():
		commands = []cmd{
			{"j/k", "Posts"},
			{"Enter", "Expand"},
			{"Esc", "Close"},
		}
	case m.searching:
		commands = []cmd{
			{"Enter", "Apply"},
			{"Esc", "Clear"},
		}
	default:
		commands = []cmd{
			{"/", "Filter"},
			{"j/k", "Navigate"},
			{"Enter", "Details"},
			{"x", "Delete"},
			{"?", "Help"},
			{"q", "Quit"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+":"+styles.MutedText.Render(c.desc))
	}
	segments = append(segments,
		styles.AccentText.Render("T")+":"+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderSearchLine renders the search control. The field mirrors the
// externally-owned term; when idle it echoes the active filter.
func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()

	if m.searching {
		return m.searchInput.View()
	}
	if m.snapshot.Search != "" {
		return styles.AccentText.Render("/"+m.snapshot.Search) +
			styles.FaintText.Render("  (esc clears)")
	}
	return styles.FaintText.Render("press / to filter")
}
