package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()
	db, repo, err := Open(context.Background(), "file:ledger_test_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return repo
}

func TestAppendAndRecent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, 1, "/analyze", "книга", "ответ про книгу"))
	require.NoError(t, repo.Append(ctx, 1, "/spell_check", "текст", "ответ про текст"))
	require.NoError(t, repo.Append(ctx, 2, "/analyze", "чужое", "не наше"))

	got, err := repo.Recent(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, got, 2, "only the requested user's records")

	// Newest first.
	assert.Equal(t, "/spell_check", got[0].Command)
	assert.Equal(t, "/analyze", got[1].Command)
	assert.Equal(t, int64(1), got[0].UserID)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestRecent_Limit(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, 7, "/analyze", "слово", "ответ"))
	}

	got, err := repo.Recent(ctx, 7, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAppend_TruncatesResponseTo500Runes(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	long := strings.Repeat("ф", 600)
	require.NoError(t, repo.Append(ctx, 3, "/analyze", "слово", long))

	got, err := repo.Recent(ctx, 3, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	stored := []rune(got[0].ResponseText)
	assert.Len(t, stored, ResponseMaxLen)
	assert.Equal(t, strings.Repeat("ф", ResponseMaxLen), got[0].ResponseText,
		"stored text must be the source's prefix, uncorrupted")
}

func TestAppend_ShortResponseKeptVerbatim(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	response := "📖 Анализ слова: \"ёжик\""
	require.NoError(t, repo.Append(ctx, 4, "/analyze", "ёжик", response))

	got, err := repo.Recent(ctx, 4, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, response, got[0].ResponseText, "Cyrillic must round-trip byte-exact")
	assert.Equal(t, "ёжик", got[0].QueryText)
}

func TestCountSince_WindowsOnTimestamp(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, 5, "/analyze", "а", "б"))
	require.NoError(t, repo.Append(ctx, 5, "/analyze", "в", "г"))

	n, err := repo.CountSince(ctx, 5, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountSince(ctx, 5, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n, "future window start matches nothing")

	n, err = repo.CountSince(ctx, 6, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n, "other users are not counted")
}

func TestClearAll_ReturnsDeletedCount(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Append(ctx, 9, "/analyze", "слово", "ответ"))
	}
	require.NoError(t, repo.Append(ctx, 10, "/analyze", "чужое", "не трогать"))

	deleted, err := repo.ClearAll(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(n), deleted)

	got, err := repo.Recent(ctx, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Repeated clear is a no-op.
	deleted, err = repo.ClearAll(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	// The other user's history survives.
	other, err := repo.Recent(ctx, 10, 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "абв", truncateRunes("абвгд", 3))
	assert.Equal(t, "аб", truncateRunes("аб", 5))
	assert.Equal(t, "", truncateRunes("", 3))
}
