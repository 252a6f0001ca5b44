package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty uses fallback", flag: "", want: 3 * time.Second},
		{name: "seconds", flag: "5s", want: 5 * time.Second},
		{name: "minimum", flag: "500ms", want: 500 * time.Millisecond},
		{name: "complex", flag: "1m30s", want: 90 * time.Second},
		{name: "too short", flag: "100ms", wantErr: true},
		{name: "no unit", flag: "5", wantErr: true},
		{name: "garbage", flag: "fast", wantErr: true},
		{name: "negative", flag: "-2s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInterval(tt.flag, 3*time.Second)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		flag    string
		want    outputFormat
		wantErr bool
	}{
		{flag: "", want: formatTable},
		{flag: "table", want: formatTable},
		{flag: "JSON", want: formatJSON},
		{flag: " yaml ", want: formatYAML},
		{flag: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := parseFormat(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
