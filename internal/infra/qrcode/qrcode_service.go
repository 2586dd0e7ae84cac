package qrcode

import (
	"strings"

	"frontdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateSignInQR renders the sign-in URL as a PNG image.
func (s *qrcodeService) GenerateSignInQR(url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("sign-in URL is empty")
	}

	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RenderSignInQR renders the sign-in URL as terminal-friendly text blocks.
func (s *qrcodeService) RenderSignInQR(url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", errors.New("sign-in URL is empty")
	}

	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return "", errors.Wrap(err, "failed to create QR code")
	}

	return qrCode.ToSmallString(false), nil
}
