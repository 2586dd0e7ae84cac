// Package shell is the interactive hosting surface: it owns the visible
// location, renders notifications and prompts, and drives the usecases
// through a small command loop.
package shell

import (
	"strings"
	"sync"

	"frontdesk/internal/domain/entity"
	"frontdesk/internal/domain/service"
)

// LocationBar owns the current entity.Location the way a browser address
// bar would, including the fragment delivered by the auth-provider redirect.
type LocationBar struct {
	mu  sync.Mutex
	loc entity.Location
}

// NewLocationBar creates a location bar positioned at the given startup
// location, typically the first command-line argument.
func NewLocationBar(startup string) *LocationBar {
	return &LocationBar{loc: ParseLocation(startup)}
}

// NewNavigator exposes the location bar as the navigation collaborator.
func NewNavigator(bar *LocationBar) service.Navigator {
	return bar
}

// Current returns the visible location.
func (b *LocationBar) Current() entity.Location {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loc
}

// Replace swaps the visible location without a history entry.
func (b *LocationBar) Replace(loc entity.Location) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.loc = loc
}

// Navigate moves to a new path.
func (b *LocationBar) Navigate(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.loc = entity.Location{Path: path}
}

// ParseLocation splits a "path#fragment" string into an entity.Location.
// An empty input positions at the root.
func ParseLocation(raw string) entity.Location {
	if raw == "" {
		return entity.Location{Path: "/"}
	}

	path, fragment, _ := strings.Cut(raw, "#")
	if path == "" {
		path = "/"
	}

	return entity.Location{Path: path, Fragment: fragment}
}
