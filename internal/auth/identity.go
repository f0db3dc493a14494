package auth

import (
	"context"
	"strings"
)

// Identity is the authenticated principal acting on the store.
// A zero Identity means no one is signed in.
type Identity struct {
	Subject string `json:"subject" yaml:"subject"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
}

// NewIdentity builds an identity from an operator handle such as an email address
func NewIdentity(handle string) Identity {
	handle = strings.TrimSpace(handle)
	id := Identity{Subject: handle}
	if strings.Contains(handle, "@") {
		id.Email = handle
	}
	return id
}

// Authenticated reports whether the identity may perform writes
func (i Identity) Authenticated() bool {
	return strings.TrimSpace(i.Subject) != ""
}

// String returns the name recorded in audit columns
func (i Identity) String() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Subject
}

type identityKey struct{}

// NewContext returns a copy of ctx carrying the identity
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored in ctx, or the zero Identity
func FromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Identity{}
	}
	id, _ := ctx.Value(identityKey{}).(Identity)
	return id
}
