package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/validation"
	_ "github.com/mattn/go-sqlite3"
)

// BatchInfo describes one imported batch.
type BatchInfo struct {
	ID        string
	Name      string
	Records   int
	CreatedAt time.Time
}

// FeedDB keeps raw input batches in sqlite so they can be loaded again by
// name. It stores what was imported, in import order; the ledger index built
// from a batch is never written back.
type FeedDB struct {
	db  *sql.DB
	now func() time.Time
}

// OpenFeed opens (creating if needed) the feed database at dbPath and runs
// the migrations found under "migrations" in migrationsFS.
func OpenFeed(dbPath string, migrationsFS fs.FS) (*FeedDB, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &FeedDB{db: db, now: time.Now}, nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (f *FeedDB) Close() error {
	return f.db.Close()
}

func (f *FeedDB) execTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// ImportBatch stores txs under a new batch name. Account ids are checked up
// front so a batch that could never load is refused at import time.
func (f *FeedDB) ImportBatch(ctx context.Context, name string, txs []ledger.Transaction) (BatchInfo, error) {
	if name == "" {
		return BatchInfo{}, fmt.Errorf("batch name can't be empty")
	}

	for i, tx := range txs {
		if err := validation.AccountID(tx.AccountID); err != nil {
			return BatchInfo{}, fmt.Errorf("record %d: account '%s': %w", i+1, tx.AccountID, err)
		}
		if tx.Number < 0 {
			return BatchInfo{}, fmt.Errorf("record %d: transaction number can't be negative", i+1)
		}
		if err := validation.FiniteAmount(tx.Amount); err != nil {
			return BatchInfo{}, fmt.Errorf("record %d: amount is %w", i+1, err)
		}
	}

	info := BatchInfo{
		ID:        uuid.NewString(),
		Name:      name,
		Records:   len(txs),
		CreatedAt: f.now().UTC().Truncate(time.Second),
	}

	err := f.execTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM batches WHERE name = ?)`, name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check batch: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: '%s'", ErrBatchExists, name)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO batches (id, name, created_at)
			VALUES (?, ?, ?)
		`, info.ID, info.Name, info.CreatedAt.Unix())
		if err != nil {
			return fmt.Errorf("failed to insert batch: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO batch_records (batch_id, seq, account_id, transaction_number, amount)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare SQL : %w", err)
		}
		defer stmt.Close()

		for i, rec := range txs {
			if _, err := stmt.ExecContext(ctx, info.ID, i, rec.AccountID, rec.Number, rec.Amount); err != nil {
				return fmt.Errorf("failed to insert record %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return BatchInfo{}, err
	}

	return info, nil
}

// ListBatches returns all batches, oldest first.
func (f *FeedDB) ListBatches(ctx context.Context) ([]BatchInfo, error) {
	rows, err := f.db.QueryContext(ctx, `
		SELECT b.id, b.name, b.created_at, COUNT(r.seq)
		FROM batches b
		LEFT JOIN batch_records r ON r.batch_id = b.id
		GROUP BY b.id, b.name, b.created_at
		ORDER BY b.created_at, b.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []BatchInfo
	for rows.Next() {
		var info BatchInfo
		var createdAt int64
		if err := rows.Scan(&info.ID, &info.Name, &createdAt, &info.Records); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		info.CreatedAt = time.Unix(createdAt, 0).UTC()
		batches = append(batches, info)
	}

	return batches, rows.Err()
}

// DeleteBatch removes a batch and its records.
func (f *FeedDB) DeleteBatch(ctx context.Context, name string) error {
	res, err := f.db.ExecContext(ctx, `DELETE FROM batches WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: '%s'", ErrBatchNotFound, name)
	}

	return nil
}

// Batch returns a Reader over the named batch.
func (f *FeedDB) Batch(name string) Reader {
	return &batchReader{feed: f, name: name}
}

type batchReader struct {
	feed *FeedDB
	name string
}

func (r *batchReader) Name() string {
	return "feed:" + r.name
}

func (r *batchReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	var batchID string
	err := r.feed.db.QueryRowContext(ctx, `SELECT id FROM batches WHERE name = ?`, r.name).Scan(&batchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: '%s'", ErrBatchNotFound, r.name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}

	rows, err := r.feed.db.QueryContext(ctx, `
		SELECT account_id, transaction_number, amount
		FROM batch_records
		WHERE batch_id = ?
		ORDER BY seq
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch records: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.AccountID, &tx.Number, &tx.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan batch record: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
