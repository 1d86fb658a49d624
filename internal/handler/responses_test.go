package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"character not found", domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{"character exists", domain.ErrCharacterExists, http.StatusConflict, ErrMsgCharacterExistsError},
		{"inventory full", domain.ErrInventoryFull, http.StatusBadRequest, ErrMsgInventoryFullError},
		{"not tradeable", domain.ErrNotTradeable, http.StatusBadRequest, ErrMsgNotTradeableError},
		{"requirement not met", domain.ErrRequirementNotMet, http.StatusForbidden, ErrMsgRequirementNotMetError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughGalleonsError},
		{"spell not known", domain.ErrSpellNotKnown, http.StatusBadRequest, ErrMsgSpellNotKnownError},
		{"insufficient mp", domain.ErrInsufficientMP, http.StatusBadRequest, ErrMsgNotEnoughMPError},
		{"quiz already active", sorting.ErrSessionExists, http.StatusConflict, ErrMsgQuizAlreadyActiveError},
		{"invalid quiz option", sorting.ErrInvalidOption, http.StatusBadRequest, ErrMsgInvalidOptionError},
		{"no quiz session", domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgNoQuizSessionError},
		{"nil error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_WrappedErrors(t *testing.T) {
	t.Run("unwraps fmt.Errorf chains", func(t *testing.T) {
		err := fmt.Errorf("buy from market: %w", domain.ErrSelfPurchase)

		status, msg := mapServiceErrorToUserMessage(err)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrMsgSelfPurchaseError, msg)
	})

	t.Run("unknown errors surface their message", func(t *testing.T) {
		err := errors.New("connection refused")

		status, msg := mapServiceErrorToUserMessage(err)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "connection refused", msg)
	})
}
