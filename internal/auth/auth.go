// Package auth defines the seam to the external identity collaborator. The
// service trusts the identity it returns and only layers role/ownership
// checks on top of it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldjobs/internal/domain/entities"
)

var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated caller attached to every request and
// realtime session.
type Identity struct {
	ID     string
	Role   entities.UserRole
	Active bool
}

// Authenticator validates a bearer token and returns the caller identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// StaticTokenAuthenticator resolves tokens against a fixed map. It backs
// local development and tests; production wires a JWT verifier behind the
// same interface.
type StaticTokenAuthenticator struct {
	identities map[string]Identity
}

func NewStaticTokenAuthenticator(tokens map[string]Identity) *StaticTokenAuthenticator {
	ids := make(map[string]Identity, len(tokens))
	for tok, id := range tokens {
		ids[tok] = id
	}
	return &StaticTokenAuthenticator{identities: ids}
}

func (a *StaticTokenAuthenticator) Authenticate(_ context.Context, token string) (Identity, error) {
	id, ok := a.identities[token]
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	return id, nil
}

// ParseStaticTokens parses the AUTH_TOKENS dev format:
//
//	token:userID:role[,token:userID:role...]
//
// An "!" suffix on the role marks the account inactive.
func ParseStaticTokens(spec string) (map[string]Identity, error) {
	out := make(map[string]Identity)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("auth: malformed token entry %q", entry)
		}
		role, inactive := strings.CutSuffix(parts[2], "!")
		if !entities.UserRole(role).Valid() {
			return nil, fmt.Errorf("auth: unknown role %q in entry %q", role, entry)
		}
		out[parts[0]] = Identity{ID: parts[1], Role: entities.UserRole(role), Active: !inactive}
	}
	return out, nil
}
