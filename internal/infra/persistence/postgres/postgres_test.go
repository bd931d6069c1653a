package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name string
		cur  sql.DBStats
		want string
	}{
		{
			name: "no new waits",
			cur:  sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
		},
		{
			name: "short waits are debug",
			cur:  sql.DBStats{WaitCount: 6, WaitDuration: time.Second + 10*time.Millisecond},
			want: "level=DEBUG",
		},
		{
			name: "long waits are warned",
			cur:  sql.DBStats{WaitCount: 5, WaitDuration: 2 * time.Second},
			want: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			monitor := &poolMonitor{
				logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				prev:   sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
			}

			monitor.observe(context.Background(), tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "Store connection pool wait")
			}
			assert.Equal(t, tt.cur, monitor.prev)
		})
	}
}
