package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_TransitionRequest(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(&TransitionRequest{ToState: "IN_PROGRESS"}))

	err := v.ValidateStruct(&TransitionRequest{ToState: "ARCHIVED"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"to_state": "Unknown lifecycle state"}, FormatValidationError(err))

	err = v.ValidateStruct(&TransitionRequest{})
	require.Error(t, err)
	assert.Equal(t, "This field is required", FormatValidationError(err)["to_state"])
}

func TestValidator_ReasonLength(t *testing.T) {
	long := make([]byte, MaxReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	err := GetValidator().ValidateStruct(&ResetRequest{Reason: string(long)})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err)["reason"], "at most")
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
