package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorWrapping(t *testing.T) {
	rootErr := errors.New("boom")
	exitErr := NewExitError(IOFailure, rootErr)

	require.NotNil(t, exitErr)
	assert.Equal(t, rootErr, exitErr.Err)
	assert.Equal(t, "boom", exitErr.Error())

	code, cause := ExitCodeFromError(fmt.Errorf("wrapped: %w", exitErr))
	assert.Equal(t, IOFailure, code)
	assert.Equal(t, rootErr, cause)
}

func TestExitCodeFromNonExitError(t *testing.T) {
	plainErr := errors.New("plain")

	code, cause := ExitCodeFromError(plainErr)
	assert.Equal(t, UnknownError, code)
	assert.Equal(t, plainErr, cause)
}

func TestExitCodeFromNil(t *testing.T) {
	code, cause := ExitCodeFromError(nil)
	assert.Equal(t, NoError, code)
	assert.Nil(t, cause)
}

func TestExitErrorWithoutCause(t *testing.T) {
	exitErr := NewExitError(ParseFailure, nil)
	assert.Equal(t, "Exit code 4", exitErr.Error())

	code, cause := ExitCodeFromError(exitErr)
	assert.Equal(t, ParseFailure, code)
	assert.Nil(t, cause)
}

func TestUsagef(t *testing.T) {
	err := Usagef("unknown argument(s): %s", "bogus")
	assert.Equal(t, UsageError, err.Code)
	assert.Equal(t, "unknown argument(s): bogus", err.Error())
}
