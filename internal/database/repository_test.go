package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryCreatesTable(t *testing.T) {
	repo, _ := createTestRepository(t)
	ctx := context.Background()

	var name string
	err := repo.db.NewRaw("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'clipboard'").
		Scan(ctx, &name)
	require.NoError(t, err)
	assert.Equal(t, "clipboard", name)

	var columns []string
	err = repo.db.NewRaw("SELECT name FROM pragma_table_info('clipboard') ORDER BY cid").
		Scan(ctx, &columns)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "content", "created_at"}, columns)
}

func TestNewRepositoryIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard.db")

	first, err := NewRepository(path)
	require.NoError(t, err)
	_, err = first.InsertIfNew(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewRepository(path)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInsertIfNewDeduplicates(t *testing.T) {
	repo, _ := createTestRepository(t)
	ctx := context.Background()

	inserted, err := repo.InsertIfNew(ctx, "https://example.com")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfNew(ctx, "https://example.com")
	require.NoError(t, err, "duplicate content must not surface as an error")
	assert.False(t, inserted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInsertIfNewSetsCreatedAt(t *testing.T) {
	repo, _ := createTestRepository(t)
	ctx := context.Background()

	_, err := repo.InsertIfNew(ctx, "https://example.com")
	require.NoError(t, err)

	var item ClipboardItem
	require.NoError(t, repo.db.NewSelect().Model(&item).Where("content = ?", "https://example.com").Scan(ctx))
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestAllContentKeepsStorageOrder(t *testing.T) {
	repo, _ := createTestRepository(t)
	ctx := context.Background()

	for _, c := range []string{"https://b.com", "https://a.com", "https://b.com", "https://c.com"} {
		_, err := repo.InsertIfNew(ctx, c)
		require.NoError(t, err)
	}

	contents, err := repo.AllContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.com", "https://a.com", "https://c.com"}, contents)
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := OpenReadOnly(path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
