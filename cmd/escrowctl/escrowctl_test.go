package main

import (
	"crypto/ed25519"
	"github.com/mr-tron/base58"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"event=abc", "quantity=3", "name=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "abc", fields["event"])
	assert.Equal(t, "3", fields["quantity"])
	assert.Equal(t, "a=b", fields["name"])

	_, err = parseFields([]string{"quantity"})
	assert.Error(t, err)

	_, err = parseFields([]string{"a=1", "a=2"})
	assert.Error(t, err)
}

func TestLoadKey(t *testing.T) {
	_, key, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.key")
	require.NoError(t, os.WriteFile(path, []byte(base58.Encode(key.Seed())+"\n"), 0o600))

	loaded, err := loadKey(path)
	require.NoError(t, err)
	assert.Equal(t, key, loaded)

	_, err = parseSeed("abc")
	assert.Error(t, err)
}
