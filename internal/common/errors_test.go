package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError(LoadFailedMessage, ErrLoadFailed)

	assert.Equal(t, "Failed to fetch the transaction array: load failed", err.Error())
	assert.ErrorIs(t, err, ErrLoadFailed)

	wrapped := fmt.Errorf("mount: %w", err)
	assert.Equal(t, LoadFailedMessage, UserMessage(wrapped))
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("just a message", nil)
	assert.Equal(t, "just a message", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}
