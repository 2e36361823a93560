package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TokenType 令牌类型
type TokenType byte

const (
	TokenTypeAccessToken  TokenType = 1
	TokenTypeRefreshToken TokenType = 2
)

var (
	// ErrInvalidToken 令牌无效
	ErrInvalidToken = errors.New("token is invalid")
	// ErrExpiredToken 令牌已过期
	ErrExpiredToken = errors.New("token has expired")
)

// Payload contains the payload data of the token.
type Payload struct {
	ID         uuid.UUID `json:"id"`
	MerchantID int64     `json:"merchant_id"`
	Type       TokenType `json:"type"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiredAt  time.Time `json:"expired_at"`
}

// NewPayload creates a new token payload for a specific merchant and duration.
func NewPayload(merchantID int64, duration time.Duration, tokenType TokenType) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		ID:         tokenID,
		MerchantID: merchantID,
		Type:       tokenType,
		IssuedAt:   time.Now(),
		ExpiredAt:  time.Now().Add(duration),
	}
	return payload, nil
}

// Valid checks if the token payload is valid or not.
func (payload *Payload) Valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
