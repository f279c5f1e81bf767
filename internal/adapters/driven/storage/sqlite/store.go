package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.InventoryStore = (*Store)(nil)

const itemColumns = "id, name, category, quantity, unit_price, created_at, updated_at"

// Store is the SQLite-backed inventory store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stocktalk/data/inventory.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stocktalk", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "inventory.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_init.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// GetItem retrieves an item by ID.
func (s *Store) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	return scanItem(row)
}

// GetItemByName retrieves an item by exact name. The name column carries
// NOCASE collation, so the comparison is case-insensitive.
func (s *Store) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE name = ?", strings.TrimSpace(name))
	return scanItem(row)
}

// ListItems returns all items ordered by name.
func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// SearchItems returns items whose name contains the query.
func (s *Store) SearchItems(ctx context.Context, query string) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE name LIKE '%' || ? || '%' ORDER BY name",
		strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListTransactions returns ledger entries at or after since, newest first.
func (s *Store) ListTransactions(ctx context.Context, since time.Time) ([]domain.Transaction, error) {
	q := "SELECT id, item_id, item_name, action, amount, timestamp FROM transactions"
	args := []any{}
	if !since.IsZero() {
		q += " WHERE timestamp >= ?"
		args = append(args, since.UTC())
	}
	q += " ORDER BY timestamp DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		var action string
		if err := rows.Scan(&txn.ID, &txn.ItemID, &txn.ItemName, &action, &txn.Amount, &txn.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txn.Action = domain.TransactionAction(action)
		out = append(out, txn)
	}
	return out, rows.Err()
}

// Mutate runs fn inside one SQL transaction, rolling back on error.
func (s *Store) Mutate(ctx context.Context, fn func(tx driven.MutationTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&mutationTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// mutationTx implements driven.MutationTx over one SQL transaction.
type mutationTx struct {
	tx *sql.Tx
}

var _ driven.MutationTx = (*mutationTx)(nil)

// GetItemByName reads an item within the transaction.
func (m *mutationTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := m.tx.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE name = ?", strings.TrimSpace(name))
	return scanItem(row)
}

// CreateItem inserts a new item, assigning its ID and timestamps.
func (m *mutationTx) CreateItem(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := m.tx.ExecContext(ctx, `
		INSERT INTO items (name, category, quantity, unit_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(item.Name), item.Category, item.Quantity,
		item.UnitPrice.String(), item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("creating item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new item id: %w", err)
	}
	item.ID = id
	return nil
}

// UpdateItem rewrites an existing item's mutable fields.
func (m *mutationTx) UpdateItem(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()

	res, err := m.tx.ExecContext(ctx, `
		UPDATE items
		SET name = ?, category = ?, quantity = ?, unit_price = ?, updated_at = ?
		WHERE id = ?
	`, strings.TrimSpace(item.Name), item.Category, item.Quantity,
		item.UnitPrice.String(), item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an item record. Ledger entries keep the item's history.
func (m *mutationTx) DeleteItem(ctx context.Context, id int64) error {
	res, err := m.tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// InsertTransaction appends a ledger entry, assigning its ID.
func (m *mutationTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	if !txn.Action.IsValid() {
		return domain.ErrInvalidInput
	}
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now()
	}
	txn.Timestamp = txn.Timestamp.UTC()

	res, err := m.tx.ExecContext(ctx, `
		INSERT INTO transactions (item_id, item_name, action, amount, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, txn.ItemID, txn.ItemName, string(txn.Action), txn.Amount, txn.Timestamp)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new transaction id: %w", err)
	}
	txn.ID = id
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for item scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*domain.Item, error) {
	var item domain.Item
	var price string
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity,
		&price, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.UnitPrice, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing unit price %q: %w", price, err)
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]domain.Item, error) {
	var out []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}
