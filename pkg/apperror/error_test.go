package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-talent-dashboard/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := apperror.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationCarriesDetails(t *testing.T) {
	err := apperror.Validation([]string{"Job Title: is required"})

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, []string{"Job Title: is required"}, err.Details)
}
