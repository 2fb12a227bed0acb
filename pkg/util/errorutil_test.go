package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewInsufficientStock("O-")

	mapped := ToDomainError(original)
	assert.Equal(t, "INSUFFICIENT_STOCK", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.Equal(t, "O-", mapped.Details["blood_type"])
}

func TestToDomainErrorWrapsGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestStoreUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreUnavailable(cause)

	mapped := ToDomainError(err)
	assert.Equal(t, "STORE_UNAVAILABLE", mapped.Code)
	assert.Equal(t, http.StatusServiceUnavailable, mapped.HTTPStatus)
	assert.ErrorIs(t, err, cause)
}
