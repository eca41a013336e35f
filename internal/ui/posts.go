package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davrell/roster/internal/directory"
)

type postsStatus int

const (
	postsLoading postsStatus = iota
	postsLoaded
	postsFailed
	postsEmpty
)

// postsState tracks the posts sub-view for the currently selected user. It is
// keyed by the owning user id; a response carrying any other id is stale and
// dropped so it can never overwrite state for the current selection.
type postsState struct {
	userID     int
	status     postsStatus
	items      []directory.Post
	err        error
	cursor     int
	expandedID int // at most one post is expanded at a time
}

func newPostsState(userID int) postsState {
	return postsState{userID: userID, status: postsLoading}
}

func (p *postsState) apply(msg postsMsg) {
	if msg.userID != p.userID {
		return
	}
	if msg.err != nil {
		p.status = postsFailed
		p.err = msg.err
		p.items = nil
		return
	}
	if len(msg.posts) == 0 {
		p.status = postsEmpty
		p.items = nil
		return
	}
	p.status = postsLoaded
	p.items = msg.posts
	p.err = nil
}

func (p *postsState) move(delta int) {
	if p.status != postsLoaded || len(p.items) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
}

// toggleExpand expands the post under the cursor; expanding one collapses any
// other that was open.
func (p *postsState) toggleExpand() {
	if p.status != postsLoaded || len(p.items) == 0 {
		return
	}
	id := p.items[p.cursor].ID
	if p.expandedID == id {
		p.expandedID = 0
		return
	}
	p.expandedID = id
}

// renderPosts renders the sub-view. Loading, failure, and zero-post states
// each look distinct.
func (m Model) renderPosts(width int) string {
	styles := m.theme.Styles()

	switch m.posts.status {
	case postsLoading:
		return styles.MutedText.Render("Loading posts…")
	case postsFailed:
		reason := "request failed"
		if m.posts.err != nil {
			reason = m.posts.err.Error()
		}
		return styles.DangerText.Render("Posts unavailable: ") +
			styles.Text.Render(truncate(reason, max(10, width-20)))
	case postsEmpty:
		return styles.FaintText.Render("No posts")
	}

	var b strings.Builder
	for i, post := range m.posts.items {
		marker := "▸"
		if post.ID == m.posts.expandedID {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s", marker, truncate(post.Title, max(10, width-4)))
		if i == m.posts.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")

		if post.ID == m.posts.expandedID {
			body := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Muted)).
				Width(max(10, width-4)).
				PaddingLeft(2).
				Render(post.Body)
			b.WriteString(body)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
