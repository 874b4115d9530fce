package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("age must be >= 0")

	assert.ErrorIs(t, errors.Wrap(err, "save profile"), ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, "Invalid profile data: age must be >= 0", err.Error())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError(cause, "upsert profile")

	var appErr AppError
	require.ErrorAs(t, errors.Wrap(err, "save"), &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Upsert profile", appErr.Message())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPersistenceError_MessageFollowsOperation(t *testing.T) {
	tests := []struct {
		details string
		want    string
	}{
		{details: "failed to find profile", want: "Failed to find profile"},
		{details: "failed to save user class", want: "Failed to save user class"},
		{details: "failed to create profile: missing required profile field", want: "Failed to create profile: missing required profile field"},
		{details: "", want: "Profile store unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPersistenceError(errors.New("boom"), tt.details).Message())
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureReason
	}{
		{name: "deadline", err: errors.Wrap(context.DeadlineExceeded, "post"), want: FailureTimeout},
		{name: "net timeout", err: timeoutErr{}, want: FailureTimeout},
		{name: "refused", err: errors.New("dial tcp: connection refused"), want: FailureTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTransportError("classifier", tt.err)
			assert.Equal(t, tt.want, got.Reason)
			assert.Equal(t, "classifier", got.Service)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestUpstreamError_Message(t *testing.T) {
	err := NewUpstreamError("market_alert", FailureBadStatus, nil)
	err.StatusCode = http.StatusBadGateway

	assert.Equal(t, "upstream market_alert unavailable (bad_status) status=502", err.Error())
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "bad_status", err.Details())
}
