package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/davrell/roster/internal/directory"
	"github.com/davrell/roster/internal/prefs"
	"github.com/davrell/roster/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    directory.Fetcher
	Store     *state.Store
	Log       *zap.SugaredLogger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    directory.Fetcher
	store     *state.Store
	log       *zap.SugaredLogger
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	cursor   int // highlighted row in the filtered view

	// Search control
	searchInput textinput.Model
	searching   bool

	// Detail overlay
	overlay        *modalSession
	detailViewport viewport.Model
	posts          postsState

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "name, email, company, or username"
	ti.CharLimit = 64

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		log:         log,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		snapshot:    state.Snapshot{Status: state.StatusPending},
		searchInput: ti,
	}
}

// Init implements tea.Model. The user list is fetched exactly once here;
// there is no retry affordance and no periodic refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		fetchUsersCmd(m.ctx, m.client),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.layoutOverlay()
		return m, nil

	case usersMsg:
		m.store.ResolveUsers(msg.users, msg.err)
		m.syncFromStore()
		return m, nil

	case postsMsg:
		m.posts.apply(msg)
		if m.overlay.Held() {
			m.refreshDetail()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.overlay.Held() {
		return m.renderOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the overlay is open the background view receives no input.
	if m.overlay.Held() {
		return m.handleOverlayKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?", "h":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/":
		if m.snapshot.Status == state.StatusSucceeded {
			m.searching = true
			cmd := m.searchInput.Focus()
			return m, cmd
		}
		return m, nil

	case "esc":
		// Clear an active filter from the table
		if m.snapshot.Search != "" {
			m.searchInput.SetValue("")
			m.store.SetSearch("")
			m.syncFromStore()
		}
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if n := len(m.snapshot.Filtered()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case "enter":
		if u, ok := m.userAtCursor(); ok {
			cmd := m.openOverlay(u)
			return m, cmd
		}
		return m, nil

	case "x", "delete":
		if u, ok := m.userAtCursor(); ok {
			m.store.Delete(u.ID)
			m.syncFromStore()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search field is focused.
// Every keystroke pushes the raw value into the store; the filtered view is
// recomputed from it on render.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Clear affordance: reset the term and leave search mode
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.searching = false
		m.store.SetSearch("")
		m.syncFromStore()
		return m, nil

	case "enter":
		// Keep the term, return focus to the table
		m.searchInput.Blur()
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.store.SetSearch(m.searchInput.Value())
	m.syncFromStore()
	return m, cmd
}

// syncFromStore refreshes the model's snapshot and reconciles view state
// that depends on it.
func (m *Model) syncFromStore() {
	m.snapshot = m.store.Snapshot()

	// The search field mirrors the externally-owned term.
	if !m.searching && m.searchInput.Value() != m.snapshot.Search {
		m.searchInput.SetValue(m.snapshot.Search)
	}

	if n := len(m.snapshot.Filtered()); n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}

	// Selection gone (deleted or deselected elsewhere): the overlay must
	// release its session even without an explicit close.
	if m.overlay != nil && !m.snapshot.HasSelection() {
		m.overlay.Release()
		m.overlay = nil
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(m.snapshot.Filtered())
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m Model) userAtCursor() (directory.User, bool) {
	users := m.snapshot.Filtered()
	if m.cursor < 0 || m.cursor >= len(users) {
		return directory.User{}, false
	}
	return users[m.cursor], true
}

// renderContent renders the main content area below the header bars.
func (m Model) renderContent() string {
	switch m.snapshot.Status {
	case state.StatusFailed:
		return m.renderError()
	case state.StatusPending:
		return m.renderLoading()
	default:
		return m.renderTable()
	}
}

// Messages

type usersMsg struct {
	users []directory.User
	err   error
}

type postsMsg struct {
	userID int
	posts  []directory.Post
	err    error
}

// Commands

func fetchUsersCmd(ctx context.Context, client directory.Fetcher) tea.Cmd {
	return func() tea.Msg {
		users, err := client.FetchUsers(ctx)
		return usersMsg{users: users, err: err}
	}
}

func fetchPostsCmd(ctx context.Context, client directory.Fetcher, userID int) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.FetchPosts(ctx, userID)
		return postsMsg{userID: userID, posts: posts, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
