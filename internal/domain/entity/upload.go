// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"io"
	"path/filepath"
	"strings"
)

// FileUpload is the local file handed to an attachment upload: the declared
// size and name are checked against the preconditions before any bytes move.
type FileUpload struct {
	Filename string    // Name presented to the server, extension included.
	Size     int64     // Declared byte size of the content.
	Content  io.Reader // File content, streamed into the multipart body.
}

// LogoFileAllowed reports whether the filename carries a png/jpg extension.
func LogoFileAllowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}

	return false
}

// DocumentFileAllowed reports whether the filename carries a pdf/doc/docx
// extension.
func DocumentFileAllowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}

	return false
}
