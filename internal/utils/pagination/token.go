package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeNameCursor creates a keyset cursor for listings ordered by name then ID.
func EncodeNameCursor(name, id string) string {
	return EncodeMultiFieldToken(name, id)
}

// DecodeNameCursor is the inverse of EncodeNameCursor. An empty token yields empty fields.
func DecodeNameCursor(token string) (name string, id string, err error) {
	if token == "" {
		return "", "", nil
	}
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid pagination token format (expected 2 fields, got %d)", len(parts))
	}
	return parts[0], parts[1], nil
}
