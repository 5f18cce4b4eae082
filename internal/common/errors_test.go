package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	base := errors.New("disk read failed")
	err := NewUserError("failed to open the transaction database", base)

	assert.Equal(t, "failed to open the transaction database: disk read failed", err.Error())
	assert.ErrorIs(t, err, base)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "failed to open the transaction database", userErr.UserMessage)
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("no files found to process", nil)
	assert.Equal(t, "no files found to process", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestUserError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("report: %w", NewUserError("no transaction database found", ErrNotFound))

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, ErrNotFound)
}
