package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	ve := NewValidation()
	require.True(t, ve.Empty())
	require.NoError(t, ve.ErrOrNil())

	ve.Add("email", "is required").Add("name", "is required")
	// first message per field wins
	ve.Add("email", "something else")

	require.False(t, ve.Empty())
	err := ve.ErrOrNil()
	require.Error(t, err)
	require.Equal(t, "validation failed: email: is required; name: is required", err.Error())

	got, ok := AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "is required", got.Fields["email"])
}

func TestAsValidation_SeesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create customer: %w", NewValidation().Add("email", "has already been taken"))
	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "email")
}

func TestNotFoundAndConflict(t *testing.T) {
	nf := NotFound("plan", "p-1")
	require.EqualError(t, nf, "plan not found: p-1")
	require.True(t, IsNotFound(fmt.Errorf("load: %w", nf)))
	require.False(t, IsNotFound(Conflict("nope")))

	cf := Conflict("cannot delete membership that is assigned to a customer")
	require.True(t, IsConflict(cf))
	require.False(t, IsConflict(nf))
}
