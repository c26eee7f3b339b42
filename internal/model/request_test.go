package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r1 := NewRequest("https://example.com/video")
	r2 := NewRequest("https://example.com/video")

	assert.Equal(t, "https://example.com/video", r1.URL)
	assert.Len(t, r1.ID, 36)
	assert.NotEqual(t, r1.ID, r2.ID)
	assert.False(t, r1.StartedAt.IsZero())
	assert.Len(t, r1.ShortID(), 8)
}

func TestOutcome_Success(t *testing.T) {
	o := Success("req-1")

	assert.True(t, o.Succeeded())
	assert.Equal(t, KindNone, o.Kind)
	assert.Empty(t, o.Message)
	assert.Empty(t, o.Error())
	assert.Nil(t, o.Unwrap())
}

func TestOutcome_FailureKeepsMessageVerbatim(t *testing.T) {
	cause := errors.New("ERROR: [generic] Unsupported URL: https://example.com/video")
	o := Failure("req-1", KindCollaboratorError, cause)

	require.False(t, o.Succeeded())
	assert.Equal(t, KindCollaboratorError, o.Kind)
	assert.Equal(t, cause.Error(), o.Message)
	assert.ErrorIs(t, o, cause)
	assert.Equal(t, "CollaboratorError: "+cause.Error(), o.Error())
}

func TestOutcome_FailureWithoutError(t *testing.T) {
	o := Failure("req-1", KindBusy, nil)

	assert.False(t, o.Succeeded())
	assert.Empty(t, o.Message)
	assert.Equal(t, "Busy", o.Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "StorageError", KindStorageError.String())
}
