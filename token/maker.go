package token

import "time"

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific merchant and duration.
	CreateToken(merchantID int64, duration time.Duration, tokenType TokenType) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not and matches the expected type.
	VerifyToken(token string, tokenType TokenType) (*Payload, error)
}
