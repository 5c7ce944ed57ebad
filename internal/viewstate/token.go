package viewstate

import "github.com/google/uuid"

// Token identifies one state-change event on an axis. A phase timer carries
// the token it was scheduled under; once the axis mints a newer token the old
// one is stale. The zero Token is never minted.
type Token struct {
	id uuid.UUID
}

func NewToken() Token {
	return Token{id: uuid.New()}
}

func (t Token) IsZero() bool { return t.id == uuid.Nil }

func (t Token) String() string {
	if t.IsZero() {
		return ""
	}
	return t.id.String()
}
