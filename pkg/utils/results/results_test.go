package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationResult(t *testing.T) {
	ok := SuccessResult[int, string](7)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 7, *ok.Success)

	bad := FailureResult[int, string]("nope")
	assert.False(t, bad.IsSuccess())
	assert.True(t, bad.IsFailure())
	assert.Equal(t, "nope", *bad.Failure)

	var zero OperationResult[int, string]
	assert.False(t, zero.IsSuccess())
	assert.False(t, zero.IsFailure())
}
