package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "7f1c2a9e-3b1d-4c55-9a43-2c0d8a1f6e10"

	token := EncodeToken(createdAt, id)
	assert.NotEmpty(t, token)

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "created_at should survive the round trip")
	assert.Equal(t, id, decodedID)
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 1, 1, 5, 30, 0, 0, ist)

	decodedAt, _, err := DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|"))
	_, _, err = DecodeToken(emptyID)
	require.Error(t, err)

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
