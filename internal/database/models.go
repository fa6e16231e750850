package database

import (
	"time"

	"github.com/uptrace/bun"
)

// ClipboardItem is one stored clipboard text. Content is unique across the
// lifetime of the table.
type ClipboardItem struct {
	bun.BaseModel `bun:"table:clipboard"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Content   string    `bun:"content,unique" json:"content"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
