package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"github.com/DATA-DOG/go-sqlmock"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &Storage{db: db}, mock
}

func testAddress(b byte) address.Address {
	var a address.Address
	a[0] = b
	return a
}

func TestWithTxCommits(t *testing.T) {
	s, mock := newMockStorage(t)
	addr := testAddress(1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT kind, data\s+FROM accounts\s+WHERE address = \$1\s+FOR UPDATE`).
		WithArgs(addr.Bytes()).
		WillReturnRows(sqlmock.NewRows([]string{"kind", "data"}).AddRow("holding", []byte{0xa0}))
	mock.ExpectExec(`UPDATE accounts`).
		WithArgs(addr.Bytes(), "holding", []byte{0xa1}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		account, err := tx.Load(ctx, addr)
		if err != nil {
			return err
		}
		assert.Equal(t, ledger.KindHolding, account.Kind)
		assert.Equal(t, []byte{0xa0}, account.Data)

		account.Data = []byte{0xa1}
		return tx.Save(ctx, account)
	})
	require.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s, mock := newMockStorage(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		if err := tx.Create(ctx, ledger.Account{Address: testAddress(2), Kind: ledger.KindMint, Data: []byte{0xa0}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestLoadNotFound(t *testing.T) {
	s, mock := newMockStorage(t)
	addr := testAddress(3)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT kind, data`).
		WithArgs(addr.Bytes()).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Load(ctx, addr)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestCreateExisting(t *testing.T) {
	s, mock := newMockStorage(t)
	addr := testAddress(4)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO accounts \(address, kind, data\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(address\) DO NOTHING`).
		WithArgs(addr.Bytes(), "event", []byte{0xa0}).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		return tx.Create(ctx, ledger.Account{Address: addr, Kind: ledger.KindEvent, Data: []byte{0xa0}})
	})
	assert.ErrorIs(t, err, ledger.ErrAccountExists)
}

func TestSaveKindMismatch(t *testing.T) {
	s, mock := newMockStorage(t)
	addr := testAddress(5)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE accounts`).
		WithArgs(addr.Bytes(), "event", []byte{0xa0}).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT kind, data`).
		WithArgs(addr.Bytes()).
		WillReturnRows(sqlmock.NewRows([]string{"kind", "data"}).AddRow("holding", []byte{0xa0}))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		return tx.Save(ctx, ledger.Account{Address: addr, Kind: ledger.KindEvent, Data: []byte{0xa0}})
	})
	assert.ErrorIs(t, err, ledger.ErrKindMismatch)
}

func TestList(t *testing.T) {
	s, mock := newMockStorage(t)
	a, b := testAddress(6), testAddress(7)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT address, data\s+FROM accounts\s+WHERE kind = \$1\s+ORDER BY address ASC`).
		WithArgs("event").
		WillReturnRows(sqlmock.NewRows([]string{"address", "data"}).
			AddRow(a.Bytes(), []byte{0x01}).
			AddRow(b.Bytes(), []byte{0x02}))
	mock.ExpectCommit()

	var got []ledger.Account
	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		var err error
		got, err = tx.List(ctx, ledger.KindEvent)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, []ledger.Account{
		{Address: a, Kind: ledger.KindEvent, Data: []byte{0x01}},
		{Address: b, Kind: ledger.KindEvent, Data: []byte{0x02}},
	}, got)
}

func TestListRejectsMalformedAddress(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT address, data`).
		WithArgs("mint").
		WillReturnRows(sqlmock.NewRows([]string{"address", "data"}).AddRow([]byte{0x01}, []byte{0x01}))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.List(ctx, ledger.KindMint)
		return err
	})
	assert.ErrorIs(t, err, address.ErrInvalid)
}
