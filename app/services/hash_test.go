package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
PasswordHasher Test Cases:

1. TestHasher_HashAndVerify
   - Generated record verifies against the original password
   - Wrong password does not verify

2. TestHasher_RecordFormat
   - Record is base64(hash):base64(salt), exactly one colon split

3. TestHasher_SaltRandomization
   - Hashing the same password twice yields different records
   - Both records verify against the password

4. TestHasher_MalformedRecords
   - Records that do not split into two parts never match, never panic

5. TestHasher_Argon2Scheme
   - argon2id records round-trip through verify
   - sha256 hasher does not verify argon2id records
*/

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewSHA256Hasher()

	record, err := h.Hash("s3cret-Password")
	require.NoError(t, err)

	assert.True(t, h.Verify("s3cret-Password", record))
	assert.False(t, h.Verify("s3cret-password", record))
	assert.False(t, h.Verify("", record))
}

func TestHasher_RecordFormat(t *testing.T) {
	h := NewSHA256Hasher()

	record, err := h.Hash("pw")
	require.NoError(t, err)

	hash, salt, ok := strings.Cut(record, ":")
	require.True(t, ok)
	assert.NotEmpty(t, hash)
	assert.NotEmpty(t, salt)
	// base64 output never contains a colon, so the split is unambiguous.
	assert.NotContains(t, salt, ":")
}

func TestHasher_SaltRandomization(t *testing.T) {
	h := NewSHA256Hasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestHasher_MalformedRecords(t *testing.T) {
	h := NewSHA256Hasher()

	for _, stored := range []string{"", "no-colon", ":only-salt", "not base64 at all"} {
		assert.False(t, h.Verify("anything", stored), "stored=%q", stored)
	}
}

func TestHasher_Argon2Scheme(t *testing.T) {
	h := NewArgon2Hasher()

	record, err := h.Hash("Str0ng-pass")
	require.NoError(t, err)

	assert.True(t, h.Verify("Str0ng-pass", record))
	assert.False(t, h.Verify("wrong", record))

	// Schemes are deployment constants; records do not verify across them.
	assert.False(t, NewSHA256Hasher().Verify("Str0ng-pass", record))
}

func TestNewHasher_SchemeSelection(t *testing.T) {
	legacy := NewHasher("sha256")
	record, err := legacy.Hash("pw123")
	require.NoError(t, err)
	assert.True(t, NewHasher("").Verify("pw123", record))
	assert.False(t, NewHasher("argon2id").Verify("pw123", record))
}
