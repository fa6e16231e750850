package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Repository is the relational clipboard store backed by SQLite.
type Repository struct {
	db *bun.DB
}

// NewRepository opens (creating if needed) the database at dbPath and
// bootstraps the clipboard table.
func NewRepository(dbPath string) (*Repository, error) {
	repo, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := repo.migrate(); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

// OpenReadOnly opens an existing database without touching its schema.
// A missing file is an error rather than an empty database.
func OpenReadOnly(dbPath string) (*Repository, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return open(dbPath)
}

func open(dbPath string) (*Repository, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)

	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{db: bun.NewDB(sqldb, sqlitedialect.New())}, nil
}

func (r *Repository) migrate() error {
	ctx := context.Background()

	_, err := r.db.NewCreateTable().
		Model((*ClipboardItem)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create table for %T: %w", (*ClipboardItem)(nil), err)
	}

	return nil
}

// InsertIfNew stores content unless an identical row already exists. The
// uniqueness conflict is absorbed by the database and reported as false.
func (r *Repository) InsertIfNew(ctx context.Context, content string) (bool, error) {
	item := &ClipboardItem{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.NewInsert().
		Model(item).
		On("CONFLICT (content) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert clipboard item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return n > 0, nil
}

// AllContent returns every stored content value in storage order.
func (r *Repository) AllContent(ctx context.Context) ([]string, error) {
	var contents []string

	err := r.db.NewSelect().
		Model((*ClipboardItem)(nil)).
		Column("content").
		Order("id ASC").
		Scan(ctx, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard items: %w", err)
	}

	return contents, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*ClipboardItem)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count clipboard items: %w", err)
	}
	return n, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
