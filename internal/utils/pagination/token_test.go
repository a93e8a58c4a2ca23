package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt, "7f1c")
	assert.NotEmpty(t, token)

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, entryDate, cursor.EntryDate)
	assert.Equal(t, createdAt, cursor.CreatedAt)
	assert.Equal(t, "7f1c", cursor.ID)

	now := time.Now().UTC()
	cursor, err = DecodeToken(EncodeToken(now, now, "x"))
	require.NoError(t, err)
	assert.True(t, now.Equal(cursor.EntryDate))
	assert.True(t, now.Equal(cursor.CreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	_, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeToken(encode("2023-05-15T00:00:00Z"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(encode("notadate|2023-05-15T14:30:45Z|id"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")

	_, err = DecodeToken(encode("2023-05-15T00:00:00Z|nope|id"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, err = DecodeToken(encode("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}
