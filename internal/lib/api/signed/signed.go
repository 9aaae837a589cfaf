// Package signed carries request co-signatures between clients and the
// HTTP transport.
package signed

import (
	"crypto/ed25519"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/signing"
	"fmt"
)

// Signatures maps a base58 signer identity to its base58 signature.
type Signatures map[string]string

// Verify checks every supplied signature over the operation message and
// returns the verified signer set. One bad signature rejects the request.
func Verify(program address.Address, operation string, fields signing.Fields, sigs Signatures) (ledger.Signers, error) {
	msg, err := signing.Message(program, operation, fields)
	if err != nil {
		return ledger.Signers{}, err
	}

	verified := make([]address.Address, 0, len(sigs))
	for who, sig := range sigs {
		signer, err := address.Parse(who)
		if err != nil {
			return ledger.Signers{}, fmt.Errorf("%w: signer %q", signing.ErrBadSignature, who)
		}
		if err := signing.Verify(signer, msg, sig); err != nil {
			return ledger.Signers{}, fmt.Errorf("signer %s: %w", signer, err)
		}
		verified = append(verified, signer)
	}

	return ledger.NewSigners(verified...), nil
}

// Sign produces the signatures of keys over one operation.
func Sign(program address.Address, operation string, fields signing.Fields, keys ...ed25519.PrivateKey) (Signatures, error) {
	msg, err := signing.Message(program, operation, fields)
	if err != nil {
		return nil, err
	}

	sigs := make(Signatures, len(keys))
	for _, key := range keys {
		sigs[signing.Identity(key).String()] = signing.Sign(key, msg)
	}

	return sigs, nil
}
