package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "nil", err: nil, expected: KindUnknown},
		{name: "plain", err: cause, expected: KindUnknown},
		{name: "invalid_argument", err: InvalidArgument("quality %d out of range", 101), expected: KindInvalidArgument},
		{name: "not_found", err: NotFound("user %q", "nobody"), expected: KindNotFound},
		{name: "asset", err: AssetUnavailable(cause, "load template"), expected: KindAssetUnavailable},
		{name: "upstream", err: UpstreamUnavailable(cause, "fetch profile"), expected: KindUpstreamUnavailable},
		{name: "wrapped", err: fmt.Errorf("render: %w", NotFound("certificate")), expected: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("status 503")
	err := UpstreamUnavailable(cause, "fetch certificates for %s", "alice")

	assert.Equal(t, "fetch certificates for alice: status 503", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindUpstreamUnavailable))
	assert.False(t, Is(err, KindNotFound))
	assert.False(t, Is(nil, KindUnknown))
}
