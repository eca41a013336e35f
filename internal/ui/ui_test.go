package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davrell/roster/internal/directory"
	"github.com/davrell/roster/internal/state"
)

// fakeFetcher substitutes the HTTP client in model tests.
type fakeFetcher struct {
	users    []directory.User
	usersErr error
	posts    map[int][]directory.Post
	postsErr error
}

func (f fakeFetcher) FetchUsers(context.Context) ([]directory.User, error) {
	return f.users, f.usersErr
}

func (f fakeFetcher) FetchPosts(_ context.Context, userID int) ([]directory.Post, error) {
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return f.posts[userID], nil
}

func testUsers() []directory.User {
	return []directory.User{
		{ID: 1, Name: "John Doe", Username: "johndoe", Email: "john@example.com",
			Website: "example.com", Company: directory.Company{Name: "Test Company"}},
		{ID: 2, Name: "Jane Smith", Username: "janesmith", Email: "jane@example.com",
			Company: directory.Company{Name: "Another Company"}},
	}
}

// newTestModel builds a ready model with the user list already resolved.
func newTestModel(t *testing.T, f directory.Fetcher, users []directory.User) Model {
	t.Helper()
	m := New(Options{Client: f, Store: state.NewStore(), PrefsPath: t.TempDir() + "/prefs.toml"})
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = apply(t, m, usersMsg{users: users})
	return m
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func applyCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
