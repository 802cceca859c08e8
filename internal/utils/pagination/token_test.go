package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("Acme Reinsurance", "c1", "extra")
	assert.NotEmpty(t, token, "Token should not be empty")

	fields, err := DecodeMultiFieldToken(token)
	require.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, []string{"Acme Reinsurance", "c1", "extra"}, fields)
}

func TestDecodeMultiFieldToken_InvalidBase64(t *testing.T) {
	_, err := DecodeMultiFieldToken("not base64!!")
	assert.Error(t, err, "Decoding invalid base64 should return an error")
}

func TestNameCursorRoundTrip(t *testing.T) {
	token := EncodeNameCursor("Banco Andino S.A.", "7b1c")

	name, id, err := DecodeNameCursor(token)

	require.NoError(t, err)
	assert.Equal(t, "Banco Andino S.A.", name)
	assert.Equal(t, "7b1c", id)
}

func TestDecodeNameCursor_Empty(t *testing.T) {
	name, id, err := DecodeNameCursor("")

	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Empty(t, id)
}

func TestDecodeNameCursor_WrongFieldCount(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("only-one"))

	_, _, err := DecodeNameCursor(token)

	assert.Error(t, err)
}
