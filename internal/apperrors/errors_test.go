package apperrors_test

import (
	"errors"
	"testing"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestNewPersistenceError_MatchesSentinel(t *testing.T) {
	cause := errors.New("connection refused")

	err := apperrors.NewPersistenceError("failed to begin transaction", cause)

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 500, err.Code)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewPersistenceError_NilCause(t *testing.T) {
	err := apperrors.NewPersistenceError("commit failed", nil)

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, "commit failed: persistence error", err.Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrDuplicate,
		apperrors.ErrPersistence,
		apperrors.ErrRender,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
