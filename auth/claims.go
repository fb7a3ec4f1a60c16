package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	// RoleMember actors can create bookings in their group.
	RoleMember Role = "member"
	// RoleApprover actors are the counterpart assigned to a group.
	RoleApprover Role = "approver"
	// RoleOverseer actors may override any transition rule.
	RoleOverseer Role = "overseer"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleApprover || r == RoleOverseer
}

// Actor is the resolved caller identity handed to the business logic. It is
// produced once at the API boundary; the core never performs live lookups.
type Actor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	GroupID string `json:"groupId"`
}

func (a Actor) Overseer() bool {
	return a.Role == RoleOverseer
}

var ErrInvalidToken = errors.New("invalid or expired token")

type actorClaims struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	GroupID string `json:"groupId"`
	jwt.RegisteredClaims
}

// Tokens validates caller claims and mints the signed deep-link tokens sent
// out with reschedule proposals.
type Tokens struct {
	secret      []byte
	issuer      string
	responseTTL time.Duration
}

func NewTokens(secret, issuer string, responseTTL time.Duration) *Tokens {
	return &Tokens{
		secret:      []byte(secret),
		issuer:      issuer,
		responseTTL: responseTTL,
	}
}

// ParseActor resolves a caller token into an Actor.
func (t *Tokens) ParseActor(tokenString string) (Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return Actor{}, ErrInvalidToken
	}

	actor := Actor{
		ID:      claims.Subject,
		Name:    claims.Name,
		Role:    Role(claims.Role),
		GroupID: claims.GroupID,
	}

	if actor.ID == "" || !actor.Role.Valid() {
		return Actor{}, ErrInvalidToken
	}

	return actor, nil
}

// MintActor issues a caller token. Used by tests and provisioning tooling;
// production tokens come from the identity provider sharing the secret.
func (t *Tokens) MintActor(actor Actor, ttl time.Duration) (string, error) {
	claims := actorClaims{
		Name:    actor.Name,
		Role:    string(actor.Role),
		GroupID: actor.GroupID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
