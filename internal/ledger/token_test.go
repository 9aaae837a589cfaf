package ledger_test

import (
	"context"
	"crypto/ed25519"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/storage/memory"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) address.Address {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	a, err := address.FromBytes(pub)
	require.NoError(t, err)
	return a
}

type fixture struct {
	store   *memory.Storage
	deriver address.Deriver
	issuer  address.Address
	asset   address.Address
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		store:   memory.New(),
		deriver: address.NewDeriver(newKey(t)),
		issuer:  newKey(t),
	}

	asset, err := ledger.AssetAddress(f.deriver, f.issuer, "USDC")
	require.NoError(t, err)
	f.asset = asset

	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		return ledger.InitializeMint(ctx, tx, asset, 6, f.issuer)
	})

	return f
}

func (f fixture) run(t *testing.T, fn func(ctx context.Context, tx ledger.Tx) error) {
	t.Helper()
	require.NoError(t, f.store.WithTx(context.Background(), fn))
}

// fund creates owner's holding and mints amount into it.
func (f fixture) fund(t *testing.T, owner address.Address, amount uint64) address.Address {
	t.Helper()

	var holding address.Address
	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		var err error
		holding, err = ledger.EnsureHolding(ctx, tx, f.deriver, owner, f.asset)
		if err != nil {
			return err
		}
		auth, err := ledger.NewSigners(f.issuer).Capability(f.issuer)
		if err != nil {
			return err
		}
		return ledger.MintTo(ctx, tx, f.asset, holding, amount, auth)
	})

	return holding
}

func (f fixture) balance(t *testing.T, holding address.Address) uint64 {
	t.Helper()

	var out uint64
	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		var err error
		out, err = ledger.Balance(ctx, tx, holding)
		return err
	})
	return out
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice, bob := newKey(t), newKey(t)
	aliceHolding := f.fund(t, alice, 500)
	bobHolding := f.fund(t, bob, 0)

	signers := ledger.NewSigners(alice)

	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		auth, err := signers.Capability(alice)
		require.NoError(t, err)
		return ledger.Transfer(ctx, tx, aliceHolding, bobHolding, 120, auth)
	})

	assert.Equal(t, uint64(380), f.balance(t, aliceHolding))
	assert.Equal(t, uint64(120), f.balance(t, bobHolding))
}

func TestTransferErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice, bob := newKey(t), newKey(t)
	aliceHolding := f.fund(t, alice, 50)
	bobHolding := f.fund(t, bob, 0)

	aliceAuth, err := ledger.NewSigners(alice).Capability(alice)
	require.NoError(t, err)
	bobAuth, err := ledger.NewSigners(bob).Capability(bob)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		from    address.Address
		to      address.Address
		amount  uint64
		auth    ledger.Capability
		wantErr error
	}{
		{name: "insufficient", from: aliceHolding, to: bobHolding, amount: 51, auth: aliceAuth, wantErr: ledger.ErrInsufficientFunds},
		{name: "wrong owner", from: aliceHolding, to: bobHolding, amount: 1, auth: bobAuth, wantErr: ledger.ErrOwnerMismatch},
		{name: "zero capability", from: aliceHolding, to: bobHolding, amount: 1, auth: ledger.Capability{}, wantErr: ledger.ErrOwnerMismatch},
		{name: "missing source", from: newKey(t), to: bobHolding, amount: 1, auth: aliceAuth, wantErr: ledger.ErrAccountNotFound},
		{name: "not a holding", from: f.asset, to: bobHolding, amount: 1, auth: aliceAuth, wantErr: ledger.ErrKindMismatch},
	}

	for _, tc := range testCases {
		err := f.store.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
			return ledger.Transfer(ctx, tx, tc.from, tc.to, tc.amount, tc.auth)
		})
		assert.ErrorIs(t, err, tc.wantErr, tc.name)
	}

	assert.Equal(t, uint64(50), f.balance(t, aliceHolding))
}

func TestTransferAssetMismatch(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice := newKey(t)
	aliceHolding := f.fund(t, alice, 10)

	other, err := ledger.AssetAddress(f.deriver, f.issuer, "EURC")
	require.NoError(t, err)

	var otherHolding address.Address
	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		require.NoError(t, ledger.InitializeMint(ctx, tx, other, 6, f.issuer))
		otherHolding, err = ledger.EnsureHolding(ctx, tx, f.deriver, alice, other)
		return err
	})

	auth, err := ledger.NewSigners(alice).Capability(alice)
	require.NoError(t, err)

	err = f.store.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		return ledger.Transfer(ctx, tx, aliceHolding, otherHolding, 1, auth)
	})
	assert.ErrorIs(t, err, ledger.ErrAssetMismatch)
}

func TestMintToRequiresAuthority(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice := newKey(t)
	holding := f.fund(t, alice, 0)

	auth, err := ledger.NewSigners(alice).Capability(alice)
	require.NoError(t, err)

	err = f.store.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		return ledger.MintTo(ctx, tx, f.asset, holding, 10, auth)
	})
	assert.ErrorIs(t, err, ledger.ErrMintAuthority)
	assert.Zero(t, f.balance(t, holding))
}

func TestDerivedCapabilitySpendsVault(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	organizer := newKey(t)

	event, bump, err := f.deriver.Derive("event", organizer)
	require.NoError(t, err)

	vault := f.fund(t, event, 40)
	dst := f.fund(t, organizer, 0)

	auth, err := ledger.DerivedCapability(f.deriver, "event", organizer, bump)
	require.NoError(t, err)
	assert.Equal(t, event, auth.Address())

	f.run(t, func(ctx context.Context, tx ledger.Tx) error {
		return ledger.Transfer(ctx, tx, vault, dst, 40, auth)
	})
	assert.Equal(t, uint64(40), f.balance(t, dst))

	forged, err := ledger.DerivedCapability(f.deriver, "event", newKey(t), bump)
	if err == nil {
		err = f.store.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
			return ledger.Transfer(ctx, tx, dst, vault, 1, forged)
		})
	}
	assert.Error(t, err)
}

func TestMintToOverflow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice := newKey(t)
	holding := f.fund(t, alice, math.MaxUint64)

	auth, err := ledger.NewSigners(f.issuer).Capability(f.issuer)
	require.NoError(t, err)

	err = f.store.WithTx(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		return ledger.MintTo(ctx, tx, f.asset, holding, 1, auth)
	})
	assert.ErrorIs(t, err, ledger.ErrBalanceOverflow)
	assert.Equal(t, uint64(math.MaxUint64), f.balance(t, holding))
}

func TestSignersCapability(t *testing.T) {
	t.Parallel()

	alice := newKey(t)
	signers := ledger.NewSigners(alice)

	assert.True(t, signers.Has(alice))

	_, err := signers.Capability(newKey(t))
	assert.ErrorIs(t, err, ledger.ErrMissingSignature)
}

func TestEnsureHoldingIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice := newKey(t)

	first := f.fund(t, alice, 5)
	second := f.fund(t, alice, 5)

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(10), f.balance(t, first))
}
