// Package postgres is the ledger backed by PostgreSQL. Each unit of work is
// one SQL transaction; accounts it touches are row-locked until commit.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"eventEscrow/internal/config"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"time"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Storage struct {
	db *sql.DB
}

var _ ledger.Ledger = (*Storage)(nil)

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Storage{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) WithTx(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(ctx, &tx{tx: sqlTx}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) Load(ctx context.Context, addr address.Address) (ledger.Account, error) {
	query := `
		SELECT kind, data
		FROM accounts
		WHERE address = $1
		FOR UPDATE`

	account := ledger.Account{Address: addr}
	err := t.tx.QueryRowContext(ctx, query, addr.Bytes()).Scan(&account.Kind, &account.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Account{}, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, addr)
		}
		return ledger.Account{}, fmt.Errorf("failed to load account %s: %w", addr, err)
	}

	return account, nil
}

func (t *tx) Create(ctx context.Context, account ledger.Account) error {
	query := `
		INSERT INTO accounts (address, kind, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO NOTHING`

	res, err := t.tx.ExecContext(ctx, query, account.Address.Bytes(), string(account.Kind), account.Data)
	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.Address, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.Address, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ledger.ErrAccountExists, account.Address)
	}

	return nil
}

func (t *tx) Save(ctx context.Context, account ledger.Account) error {
	query := `
		UPDATE accounts
		SET data = $3, updated_at = NOW()
		WHERE address = $1 AND kind = $2`

	res, err := t.tx.ExecContext(ctx, query, account.Address.Bytes(), string(account.Kind), account.Data)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.Address, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.Address, err)
	}
	if n > 0 {
		return nil
	}

	// Tell a missing account apart from one of another kind.
	existing, err := t.Load(ctx, account.Address)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s is %q", ledger.ErrKindMismatch, account.Address, existing.Kind)
}

func (t *tx) List(ctx context.Context, kind ledger.Kind) ([]ledger.Account, error) {
	query := `
		SELECT address, data
		FROM accounts
		WHERE kind = $1
		ORDER BY address ASC`

	rows, err := t.tx.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s accounts: %w", kind, err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		var (
			raw     []byte
			account = ledger.Account{Kind: kind}
		)
		if err := rows.Scan(&raw, &account.Data); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if account.Address, err = address.FromBytes(raw); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}
