// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the resolved signed-in principal. It is immutable for a page
// lifetime: the auth handshake writes it once and sign-out clears it.
type Identity struct {
	ID      string // Server-assigned unique user ID.
	Name    string // The user's display name.
	Email   string // The user's primary contact email.
	Picture string // Optional avatar URL; empty when the provider supplies none.
}
