package verdict_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socialchain/antibot/internal/antibot/verdict"
)

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "Success", verdict.Success.String())
	assert.Equal(t, "CommentDeletedEdit", verdict.CommentDeletedEdit.String())
	assert.Contains(t, verdict.Verdict(36).String(), "36")
}

func TestVerdict_Transient(t *testing.T) {
	assert.True(t, verdict.Failed.Transient())
	assert.True(t, verdict.Unknown.Transient())
	assert.False(t, verdict.PostLimit.Transient())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := verdict.NewError(verdict.Failed, "post", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed")
}
