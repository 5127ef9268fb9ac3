package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/utils/pagination"
)

func TestCursorRoundtrip(t *testing.T) {
	in := pagination.Cursor{ActorID: 42, UpdatedUnix: 1700000000123}

	token, err := pagination.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_EmptyTokenIsFirstPage(t *testing.T) {
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestDecode_InvalidToken(t *testing.T) {
	_, err := pagination.Decode("not base64 at all!!!")
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)

	// valid base64 but not a cursor payload
	_, err = pagination.Decode("bm90LWpzb24")
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)
}

func TestIsZero(t *testing.T) {
	assert.True(t, pagination.Cursor{}.IsZero())
	assert.False(t, pagination.Cursor{ActorID: 1}.IsZero())
	assert.False(t, pagination.Cursor{UpdatedUnix: 5}.IsZero())
}
