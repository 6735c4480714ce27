package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Classification(t *testing.T) {
	err := Validation("module", "SetCredits", "credits must be positive", ErrValueOutOfRange)

	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "module.SetCredits: credits must be positive: value out of range", err.Error())

	wrapped := fmt.Errorf("add_module: %w", err)
	assert.True(t, IsValidation(wrapped))

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, "credits must be positive", domainErr.Message)
}

func TestDomainError_WithoutDetail(t *testing.T) {
	err := NewDomainError("program", "FindModule", ErrNotFound, "module X not found")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsDuplicate(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "program.FindModule: module X not found", err.Error())
	assert.Equal(t, ErrNotFound, errors.Unwrap(err))
}
