package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
)

func numbered(n int) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, n)
	for i := range out {
		out[i] = entity.HistoryEntry{URL: fmt.Sprintf("https://site/%d", i)}
	}
	return out
}

func indexes(items []session.MenuItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Index)
	}
	return out
}

func TestBackForward_NearestFirst(t *testing.T) {
	back, forward := session.BackForward(entity.SessionSnapshot{Entries: numbered(5), CurrentIndex: 2}, 0)

	assert.Equal(t, []int{1, 0}, indexes(back))
	assert.Equal(t, []int{3, 4}, indexes(forward))
	assert.Equal(t, "https://site/1", back[0].Entry.URL)
}

func TestBackForward_Limit(t *testing.T) {
	back, forward := session.BackForward(entity.SessionSnapshot{Entries: numbered(40), CurrentIndex: 20}, 15)

	assert.Len(t, back, 15)
	assert.Len(t, forward, 15)
	assert.Equal(t, 5, back[len(back)-1].Index)
	assert.Equal(t, 35, forward[len(forward)-1].Index)
}

func TestBackForward_Edges(t *testing.T) {
	back, forward := session.BackForward(entity.SessionSnapshot{Entries: numbered(3), CurrentIndex: 0}, 2)
	assert.Empty(t, back)
	assert.Equal(t, []int{1, 2}, indexes(forward))

	back, forward = session.BackForward(entity.SessionSnapshot{}, 2)
	assert.Empty(t, back)
	assert.Empty(t, forward)
}
