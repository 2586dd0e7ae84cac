// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Location is the visible navigation target of the hosting shell: the path
// shown to the user plus the fragment delivered by the auth-provider
// redirect. The fragment is where the one-time exchange token arrives.
type Location struct {
	Path     string // Path component, e.g. "/dashboard".
	Fragment string // Fragment without the leading "#"; empty when absent.
}

// WithoutFragment returns a copy of the location with the fragment stripped.
// Used after a successful token exchange so the token never stays visible.
func (l Location) WithoutFragment() Location {
	return Location{Path: l.Path}
}

// String renders the location the way an address bar would show it.
func (l Location) String() string {
	if l.Fragment == "" {
		return l.Path
	}

	return l.Path + "#" + l.Fragment
}
