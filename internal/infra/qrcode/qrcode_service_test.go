package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateCafeQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://cafemap.vn")

	qrBytes, err := svc.GenerateCafeQR("la-viet-coffee")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCafeQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{0, 128, 512} {
		svc := NewQRCodeService(size, "L", "")

		qrBytes, err := svc.GenerateCafeQR("tiem-ca-phe")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateCafeQR_EmptySlug(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://cafemap.vn")

	_, err := svc.GenerateCafeQR("  ")
	assert.ErrorContains(t, err, "slug is required")
}

func TestQRCodeService_CafePageURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://cafemap.vn/").(*qrcodeService)

	assert.Equal(t, "https://cafemap.vn/cafe/la-viet-coffee", svc.CafePageURL("la-viet-coffee"))
	assert.Equal(t, "https://cafemap.vn/cafe/a%2Fb", svc.CafePageURL("a/b"))
}
