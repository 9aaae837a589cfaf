// Package idgen generates receipt identifiers backed by nanoid.
package idgen

import (
	"fmt"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// ReceiptPrefix is prepended to every receipt ID.
const ReceiptPrefix = "rcpt-"

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const length = 16

// Receipt returns a new receipt ID.
func Receipt() (string, error) {
	id, err := nanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return ReceiptPrefix + id, nil
}
