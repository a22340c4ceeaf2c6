package sqlite

import (
	"database/sql"

	"github.com/stocknest/stocknest_app/internal/apperrors"
)

// schema is the full local database schema. Changes are additive-field-only;
// there is no migration scheme for the embedded store.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    profile_id    TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    display_name  TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_items (
    item_id     TEXT PRIMARY KEY,
    board_id    TEXT NOT NULL,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    label       TEXT NOT NULL DEFAULT '',
    paid_to     TEXT NOT NULL DEFAULT '',
    price       TEXT NOT NULL,
    cost_price  TEXT NOT NULL,
    quantity    INTEGER NOT NULL DEFAULT 0,
    image_ids   TEXT NOT NULL DEFAULT '[]',
    created_at  DATETIME NOT NULL,
    updated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inventory_items_board
    ON inventory_items(board_id);

CREATE TABLE IF NOT EXISTS item_media (
    image_id     TEXT PRIMARY KEY,
    board_id     TEXT NOT NULL,
    url          TEXT NOT NULL,
    storage_path TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    created_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_item_media_board
    ON item_media(board_id);

CREATE TABLE IF NOT EXISTS vocabularies (
    board_id TEXT NOT NULL,
    kind     TEXT NOT NULL CHECK (kind IN ('category', 'label', 'paid_to')),
    value    TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (board_id, kind, value)
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageInit, "creating schema", err)
	}
	return nil
}
