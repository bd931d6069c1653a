package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Digest identifies a payload by content.
type Digest struct {
	SHA256 string
	Size   int64
}

// Checksum consumes r and returns its SHA-256 and length.
func Checksum(r io.Reader) (Digest, error) {
	h := sha256.New()

	n, err := io.Copy(h, r)
	if err != nil {
		return Digest{}, errors.Wrap(err, "failed to calculate checksum")
	}

	return Digest{SHA256: hex.EncodeToString(h.Sum(nil)), Size: n}, nil
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPE"
	value := float64(bytes) / unit
	exp := 0
	for value >= unit && exp < len(units)-1 {
		value /= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", value, units[exp])
}

// FormatDuration renders run times compactly: "850ms", "45s", "5m10s", "1h30m".
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)
	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
