// Package service defines the interfaces for external collaborators the
// application depends on.
package service

// QRCodeService renders the external sign-in URL as a QR code so the
// browser redirect flow can be completed from another device.
type QRCodeService interface {
	// GenerateSignInQR renders the given sign-in URL as a PNG image.
	GenerateSignInQR(url string) ([]byte, error)

	// RenderSignInQR renders the given sign-in URL as terminal-friendly
	// text blocks.
	RenderSignInQR(url string) (string, error)
}
