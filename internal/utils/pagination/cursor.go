// Package pagination implements the opaque cursor tokens used by list
// endpoints. Tokens are base64 JSON so clients can hold them without
// understanding them.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidToken is returned for tokens that were not produced by Encode.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor pins a position in a likers listing. UpdatedUnix is the decision's
// update time in milliseconds; ActorID breaks ties between rows updated in
// the same millisecond.
type Cursor struct {
	ActorID     uint64 `json:"actor_id"`
	UpdatedUnix int64  `json:"updated_unix,omitempty"`
}

// IsZero reports whether the cursor carries no position (first page).
func (c Cursor) IsZero() bool {
	return c.ActorID == 0 && c.UpdatedUnix == 0
}

// Encode serializes a cursor into an opaque URL-safe token.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a token back into a Cursor. The empty token means first
// page; anything unparseable is ErrInvalidToken.
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
