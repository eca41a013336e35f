package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davrell/roster/internal/directory"
)

const (
	overlayMaxWidth  = 76
	overlayMaxHeight = 28
)

// modalSession is scoped ownership of the modal layer. While held, background
// input is locked and the dismissal key routes to the overlay. Release must
// run on every exit path, including teardown without an explicit close, and
// is safe to call more than once.
type modalSession struct {
	released bool
}

func newModalSession() *modalSession {
	return &modalSession{}
}

// Release ends the session, unlocking background input.
func (s *modalSession) Release() {
	if s != nil {
		s.released = true
	}
}

// Held reports whether the session still owns the modal layer.
func (s *modalSession) Held() bool {
	return s != nil && !s.released
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// openOverlay selects the user and acquires the modal session. The posts
// sub-view starts loading keyed by the selected id.
func (m *Model) openOverlay(u directory.User) tea.Cmd {
	m.store.Select(u.ID)
	m.syncFromStore()
	if !m.snapshot.HasSelection() {
		return nil
	}
	if !m.overlay.Held() {
		m.overlay = newModalSession()
	}
	m.posts = newPostsState(u.ID)
	m.layoutOverlay()
	m.refreshDetail()
	return fetchPostsCmd(m.ctx, m.client, u.ID)
}

// dismissOverlay is the single close path for all three dismissal triggers:
// the esc key, the q close affordance, and a backdrop click.
func (m *Model) dismissOverlay() {
	m.store.Deselect()
	m.syncFromStore() // releases the session once the selection is gone
}

// handleOverlayKey processes keyboard input while the overlay is open.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.dismissOverlay()
		return m, nil

	case "j", "down":
		m.posts.move(1)
		m.refreshDetail()
		return m, nil

	case "k", "up":
		m.posts.move(-1)
		m.refreshDetail()
		return m, nil

	case "enter", " ":
		m.posts.toggleExpand()
		m.refreshDetail()
		return m, nil

	case "ctrl+d", "ctrl+u", "pgup", "pgdown":
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouse dismisses the overlay on backdrop clicks. A click inside the
// panel never dismisses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlay.Held() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.overlayRect().contains(msg.X, msg.Y) {
		return m, nil
	}
	m.dismissOverlay()
	return m, nil
}

// overlayRect returns the panel's screen rectangle. The same geometry is used
// for rendering and for the backdrop hit test.
func (m Model) overlayRect() rect {
	w := min(overlayMaxWidth, m.width-4)
	h := min(overlayMaxHeight, m.height-2)
	if w < 20 {
		w = m.width
	}
	if h < 8 {
		h = m.height
	}
	return rect{x: (m.width - w) / 2, y: (m.height - h) / 2, w: w, h: h}
}

func (m *Model) layoutOverlay() {
	r := m.overlayRect()
	// Inside the border and padding
	m.detailViewport.Width = r.w - 6
	m.detailViewport.Height = r.h - 2
}

func (m *Model) refreshDetail() {
	u, ok := m.snapshot.Selected()
	if !ok {
		return
	}
	m.detailViewport.SetContent(m.detailContent(u))
}

// renderOverlay renders the detail panel centered over a blank backdrop.
func (m Model) renderOverlay() string {
	r := m.overlayRect()

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 2).
		Width(r.w - 2).
		Height(r.h - 2).
		Render(m.detailViewport.View())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		panel,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// detailContent renders the selected user's grouped sections plus the posts
// sub-view. Blank fields render as empty, never as placeholder text.
func (m Model) detailContent(u directory.User) string {
	styles := m.theme.Styles()
	width := m.detailViewport.Width

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", styles.Text.Bold(true).Render(u.Name))
	if u.Username != "" {
		fmt.Fprintf(&b, "%s\n", styles.MutedText.Render("@"+u.Username))
	}

	writeSection := func(title string) {
		fmt.Fprintf(&b, "\n%s\n", styles.AccentText.Render(strings.ToUpper(title)))
		fmt.Fprintf(&b, "%s\n", styles.FaintText.Render(strings.Repeat("─", min(38, width))))
	}

	writeField := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n",
			styles.MutedText.Render(pad(label, 9)),
			styles.Text.Render(truncate(value, width-10)))
	}

	writeSection("Contact")
	if u.Email != "" {
		fmt.Fprintf(&b, "%s %s\n",
			styles.MutedText.Render(pad("Email", 9)),
			styles.InfoText.Render(hyperlink("mailto:"+u.Email, u.Email)))
	}
	writeField("Phone", u.Phone)
	if site := u.WebsiteURL(); site != "" {
		fmt.Fprintf(&b, "%s %s\n",
			styles.MutedText.Render(pad("Website", 9)),
			styles.InfoText.Render(hyperlink(site, u.Website)))
	}

	writeSection("Address")
	writeField("Street", u.Address.Street)
	writeField("Suite", u.Address.Suite)
	writeField("City", u.Address.City)
	writeField("Zipcode", u.Address.Zipcode)
	if u.Address.Geo.Lat != "" || u.Address.Geo.Lng != "" {
		writeField("Geo", u.Address.Geo.Lat+", "+u.Address.Geo.Lng)
	}

	writeSection("Company")
	writeField("Name", u.Company.Name)
	writeField("Motto", u.Company.CatchPhrase)
	writeField("Focus", u.Company.BS)

	writeSection("Posts")
	b.WriteString(m.renderPosts(width))

	return b.String()
}
