package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/roster/internal/directory"
)

func TestPostsState_StaleResponseIgnored(t *testing.T) {
	p := newPostsState(2)

	p.apply(postsMsg{userID: 1, posts: []directory.Post{{ID: 10, UserID: 1}}})
	assert.Equal(t, postsLoading, p.status, "a response for another user must not land")
	assert.Empty(t, p.items)

	p.apply(postsMsg{userID: 2, posts: []directory.Post{{ID: 20, UserID: 2}}})
	assert.Equal(t, postsLoaded, p.status)
	require.Len(t, p.items, 1)
	assert.Equal(t, 20, p.items[0].ID)
}

func TestPostsState_DistinctTerminalStates(t *testing.T) {
	failed := newPostsState(1)
	failed.apply(postsMsg{userID: 1, err: errors.New("boom")})
	assert.Equal(t, postsFailed, failed.status)
	assert.Error(t, failed.err)

	empty := newPostsState(1)
	empty.apply(postsMsg{userID: 1})
	assert.Equal(t, postsEmpty, empty.status)
	assert.NoError(t, empty.err)
}

func TestPostsState_SingleExpandedPost(t *testing.T) {
	p := newPostsState(1)
	p.apply(postsMsg{userID: 1, posts: []directory.Post{
		{ID: 10, Title: "first"},
		{ID: 11, Title: "second"},
	}})

	p.toggleExpand()
	assert.Equal(t, 10, p.expandedID)

	// Expanding another post collapses the open one
	p.move(1)
	p.toggleExpand()
	assert.Equal(t, 11, p.expandedID)

	p.toggleExpand()
	assert.Equal(t, 0, p.expandedID)
}

func TestModel_PostsLoadThroughOverlay(t *testing.T) {
	fetcher := fakeFetcher{posts: map[int][]directory.Post{
		1: {{ID: 10, UserID: 1, Title: "qui est esse"}},
	}}
	m := newTestModel(t, fetcher, testUsers())

	m, cmd := applyCmd(t, m, keyEnter())
	require.NotNil(t, cmd)

	m = apply(t, m, cmd())
	assert.Equal(t, postsLoaded, m.posts.status)
	require.Len(t, m.posts.items, 1)
	assert.Equal(t, "qui est esse", m.posts.items[0].Title)
}

func TestModel_SelectionChangeRekeysPosts(t *testing.T) {
	m := newTestModel(t, fakeFetcher{}, testUsers())

	// Open user 1, close, then open user 2 before the first fetch lands.
	m, firstCmd := applyCmd(t, m, keyEnter())
	require.NotNil(t, firstCmd)
	m = apply(t, m, keyEsc())

	m = apply(t, m, keyRunes("j"))
	m, _ = applyCmd(t, m, keyEnter())
	require.Equal(t, 2, m.posts.userID)

	// The first user's late response is stale and must not corrupt state.
	m = apply(t, m, postsMsg{userID: 1, posts: []directory.Post{{ID: 10, UserID: 1}}})
	assert.Equal(t, 2, m.posts.userID)
	assert.Equal(t, postsLoading, m.posts.status)
	assert.Empty(t, m.posts.items)
}

func TestModel_PostsFailureRendersDistinctly(t *testing.T) {
	fetcher := fakeFetcher{postsErr: errors.New("posts endpoint down")}
	m := newTestModel(t, fetcher, testUsers())

	m, cmd := applyCmd(t, m, keyEnter())
	require.NotNil(t, cmd)
	m = apply(t, m, cmd())

	assert.Equal(t, postsFailed, m.posts.status)
	out := m.renderPosts(60)
	assert.Contains(t, out, "Posts unavailable")
	assert.Contains(t, out, "posts endpoint down")
}
