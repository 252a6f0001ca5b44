package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrSource,
		ErrProcess,
		ErrKill,
		ErrInput,
		ErrServer,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Interval too short",
			suggestion: "Minimum interval is 500ms",
		},
		{
			name:    "input error",
			code:    ErrInput,
			message: "Invalid pid: abc",
		},
		{
			name:    "kill error",
			code:    ErrKill,
			message: "Process 42 is gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check .procdash.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .procdash.yaml syntax"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(errors.New("permission denied"), ErrKill, "Kill failed", ""),
			expectedParts: []string{"Kill failed", "permission denied"},
		},
		{
			name:          "without suggestion",
			err:           New(ErrSource, "Metrics source unavailable", ""),
			expectedParts: []string{"Metrics source unavailable"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestShort(t *testing.T) {
	assert.Equal(t, "Metrics source unavailable", New(ErrSource, "Metrics source unavailable", "retry").Short())
	assert.Equal(t, "Metrics source unavailable: timeout",
		Wrap(errors.New("timeout"), "Metrics source unavailable").Short())
}

func TestWrap(t *testing.T) {
	cause := errors.New("read /proc/stat: no such file")
	wrapped := Wrap(cause, "Metrics source unavailable")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrSource, wrapped.Code, "Wrap should default to ErrSource code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = fmt.Errorf("outer: %w", New(ErrConfig, "Config error", "Fix config"))

	var pdErr *Error
	require.True(t, errors.As(wrapped, &pdErr))
	assert.Equal(t, ErrConfig, pdErr.Code)
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"matching code", New(ErrSource, "x", ""), ErrSource, true},
		{"different code", New(ErrSource, "x", ""), ErrProcess, false},
		{"plain error", errors.New("x"), ErrSource, false},
		{"nil error", nil, ErrSource, false},
		{"wrapped structured error", fmt.Errorf("tick: %w", New(ErrInput, "x", "")), ErrInput, true},
		{
			name: "combined errors",
			err:  Combine(New(ErrSource, "a", ""), New(ErrProcess, "b", "")),
			code: ErrProcess,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine())
	assert.NoError(t, Combine(nil, nil))

	single := New(ErrSource, "a", "")
	assert.Equal(t, error(single), Combine(nil, single))

	both := Combine(New(ErrSource, "a", ""), New(ErrProcess, "b", ""))
	require.Error(t, both)
	assert.Equal(t, "a; b", Summary(both))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary(nil))
	assert.Equal(t, "boom", Summary(errors.New("boom")))
	assert.Equal(t, "Metrics source unavailable: timeout",
		Summary(Wrap(errors.New("timeout"), "Metrics source unavailable")))
}

func TestRender(t *testing.T) {
	assert.Empty(t, Render(nil))

	structured := New(ErrKill, "Couldn't terminate process 42", "Try --force.")
	assert.Equal(t, structured.Error(), Render(structured))
	assert.Equal(t, structured.Error(), Render(fmt.Errorf("outer: %w", structured)))

	assert.Equal(t, "✗ plain failure\n", Render(errors.New("plain failure")))
}
