package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ResponseAccept  = "accept"
	ResponseDecline = "decline"
)

// ResponseClaims is the payload of a reschedule deep-link token. The token
// alone authenticates the responder: it is bound to one booking, one action
// and one actor, and expires with the proposal window.
type ResponseClaims struct {
	BookingID string `json:"bookingId"`
	Action    string `json:"action"`
	jwt.RegisteredClaims
}

// MintResponseToken issues one of the two signed deep-link tokens carried by
// a reschedule notification.
func (t *Tokens) MintResponseToken(bookingID, action, responderID string) (string, error) {
	claims := ResponseClaims{
		BookingID: bookingID,
		Action:    action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   responderID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.responseTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *Tokens) ParseResponseToken(tokenString string) (ResponseClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResponseClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return ResponseClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ResponseClaims)
	if !ok || !token.Valid {
		return ResponseClaims{}, ErrInvalidToken
	}

	if claims.BookingID == "" || (claims.Action != ResponseAccept && claims.Action != ResponseDecline) {
		return ResponseClaims{}, ErrInvalidToken
	}

	return *claims, nil
}
