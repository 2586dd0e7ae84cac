// Package service defines the interfaces for external collaborators the
// application depends on.
package service

import "frontdesk/internal/domain/entity"

// Notifier surfaces transient success/failure notifications to the user.
// Every operation boundary converts its errors into one of these instead of
// propagating them into the rendering layer.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator controls the visible navigation target of the hosting shell.
type Navigator interface {
	// Replace swaps the visible location without adding a history entry.
	// Used to strip the exchange token from the address after the handshake.
	Replace(loc entity.Location)

	// Navigate moves to a new path, adding a history entry.
	Navigate(path string)
}

// Prompter asks the user for interactive confirmation before irreversible
// actions such as a cascading business delete.
type Prompter interface {
	Confirm(message string) bool
}
