package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay_OpenSelectsAndLocksBackground(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())

	m, cmd := applyCmd(t, m, keyEnter())

	assert.True(t, m.overlay.Held())
	assert.Equal(t, 1, m.snapshot.SelectedID)
	assert.Equal(t, 1, m.posts.userID)
	assert.Equal(t, postsLoading, m.posts.status)
	require.NotNil(t, cmd, "opening must trigger the posts fetch")

	// Background keys must not reach the table while the overlay is open
	before := m.cursor
	m = apply(t, m, keyRunes("j"))
	assert.Equal(t, before, m.cursor)
}

func TestOverlay_EscReleasesSessionAndDeselects(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())

	session := m.overlay
	require.True(t, session.Held())

	m = apply(t, m, keyEsc())

	assert.False(t, session.Held(), "dismissal must release the scroll lock")
	assert.Nil(t, m.overlay)
	assert.False(t, m.snapshot.HasSelection())
	assert.False(t, m.store.Snapshot().HasSelection())
}

func TestOverlay_CloseAffordanceReleases(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())
	session := m.overlay

	m, cmd := applyCmd(t, m, keyRunes("q"))

	assert.Nil(t, cmd, "q closes the overlay, it does not quit")
	assert.False(t, session.Held())
	assert.False(t, m.snapshot.HasSelection())
}

func TestOverlay_BackdropClickDismissesOutsidePanelOnly(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())
	session := m.overlay

	inside := m.overlayRect()
	click := tea.MouseMsg{
		X:      inside.x + inside.w/2,
		Y:      inside.y + inside.h/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m = apply(t, m, click)
	assert.True(t, session.Held(), "a click inside the panel must not dismiss")

	backdrop := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = apply(t, m, backdrop)
	assert.False(t, session.Held())
	assert.False(t, m.snapshot.HasSelection())
}

func TestOverlay_TeardownWithoutExplicitCloseReleases(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())
	session := m.overlay

	// The selected record disappears out from under the overlay.
	m.store.Delete(1)
	m.syncFromStore()

	assert.False(t, session.Held(), "teardown must release the session even without an explicit close")
	assert.Nil(t, m.overlay)
}

func TestOverlay_ReopenAcquiresFreshSession(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())
	first := m.overlay
	m = apply(t, m, keyEsc())

	m, _ = applyCmd(t, m, keyEnter())
	assert.True(t, m.overlay.Held())
	assert.NotSame(t, first, m.overlay)
}

func TestOverlay_DetailShowsLinksAndSections(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())
	m, _ = applyCmd(t, m, keyEnter())

	content := m.detailContent(testUsers()[0])
	assert.Contains(t, content, "John Doe")
	assert.Contains(t, content, "mailto:john@example.com")
	assert.Contains(t, content, "http://example.com")
	assert.Contains(t, content, "CONTACT")
	assert.Contains(t, content, "COMPANY")
}
