// Package signing builds canonical request messages and checks ed25519
// co-signatures over them.
package signing

import (
	"crypto/ed25519"
	"errors"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/codec"
	"fmt"
	"github.com/mr-tron/base58"
)

var ErrBadSignature = errors.New("signature verification failed")

// Fields are the signed request parameters, rendered as strings so any
// client can reproduce them without knowing the server's Go types.
type Fields map[string]string

type envelope struct {
	Program   string `cbor:"program"`
	Operation string `cbor:"operation"`
	Fields    Fields `cbor:"fields"`
}

// Message returns the bytes a co-signer signs for one operation.
func Message(program address.Address, operation string, fields Fields) ([]byte, error) {
	if fields == nil {
		fields = Fields{}
	}

	msg, err := codec.Marshal(envelope{
		Program:   program.String(),
		Operation: operation,
		Fields:    fields,
	})
	if err != nil {
		return nil, fmt.Errorf("encode signing message: %w", err)
	}

	return msg, nil
}

// Sign returns the base58 signature of msg.
func Sign(key ed25519.PrivateKey, msg []byte) string {
	return base58.Encode(ed25519.Sign(key, msg))
}

// Verify checks a base58 signature by signer over msg.
func Verify(signer address.Address, msg []byte, signature string) error {
	raw, err := base58.Decode(signature)
	if err != nil || len(raw) != ed25519.SignatureSize {
		return fmt.Errorf("%w: malformed signature", ErrBadSignature)
	}

	if !ed25519.Verify(ed25519.PublicKey(signer.Bytes()), msg, raw) {
		return ErrBadSignature
	}

	return nil
}

// Identity returns the address of an ed25519 key.
func Identity(key ed25519.PrivateKey) address.Address {
	a, _ := address.FromBytes(key.Public().(ed25519.PublicKey))
	return a
}
