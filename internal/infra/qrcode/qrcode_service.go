package qrcode

import (
	"net/url"
	"strings"

	"cafemap/internal/domain/service"
	"cafemap/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	cafePagePrefix = "/cafe/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes links to public cafe pages under baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// CafePageURL returns the public page link encoded in a cafe's QR code.
func (s *qrcodeService) CafePageURL(slug string) string {
	return s.baseURL + cafePagePrefix + url.PathEscape(slug)
}

// GenerateCafeQR generates a PNG QR code linking to the cafe page.
func (s *qrcodeService) GenerateCafeQR(slug string) ([]byte, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, errors.New("slug is required")
	}

	qrCode, err := qrcode.New(s.CafePageURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
