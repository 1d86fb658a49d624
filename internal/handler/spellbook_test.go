package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/spellbook"
)

// MockSpellbookService mocks the spellbook.Service interface
type MockSpellbookService struct {
	mock.Mock
}

func (m *MockSpellbookService) LearnSpell(ctx context.Context, discordID, spellID string) error {
	args := m.Called(ctx, discordID, spellID)
	return args.Error(0)
}

func (m *MockSpellbookService) UseSpell(ctx context.Context, discordID, spellID string) (*spellbook.CastResult, error) {
	args := m.Called(ctx, discordID, spellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spellbook.CastResult), args.Error(1)
}

func (m *MockSpellbookService) GetSpellbook(ctx context.Context, discordID string) ([]spellbook.SpellView, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spellbook.SpellView), args.Error(1)
}

func (m *MockSpellbookService) GetSpell(ctx context.Context, discordID, spellID string) (*spellbook.SpellView, error) {
	args := m.Called(ctx, discordID, spellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spellbook.SpellView), args.Error(1)
}

func (m *MockSpellbookService) TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error) {
	args := m.Called(ctx, spellID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerSpell), args.Error(1)
}

func (m *MockSpellbookService) CountKnownBy(ctx context.Context, spellID string) (int, error) {
	args := m.Called(ctx, spellID)
	return args.Int(0), args.Error(1)
}

func TestHandleLearnSpell(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockSpellbookService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: SpellRequest{DiscordID: "discord-1", SpellID: "expelliarmus"},
			setupMock: func(m *MockSpellbookService) {
				m.On("LearnSpell", mock.Anything, "discord-1", "expelliarmus").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgSpellLearnedSuccess,
		},
		{
			name:        "Unknown spell",
			requestBody: SpellRequest{DiscordID: "discord-1", SpellID: "abracadabra"},
			setupMock: func(m *MockSpellbookService) {
				m.On("LearnSpell", mock.Anything, "discord-1", "abracadabra").
					Return(domain.ErrSpellNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgSpellNotFoundError,
		},
		{
			name:        "Level requirement not met",
			requestBody: SpellRequest{DiscordID: "discord-1", SpellID: "expecto_patronum"},
			setupMock: func(m *MockSpellbookService) {
				m.On("LearnSpell", mock.Anything, "discord-1", "expecto_patronum").
					Return(domain.ErrRequirementNotMet)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgRequirementNotMetError,
		},
		{
			name:           "Missing spell_id",
			requestBody:    SpellRequest{DiscordID: "discord-1"},
			setupMock:      func(m *MockSpellbookService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSpellbookService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/spellbook/learn", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleLearnSpell(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleCastSpell(t *testing.T) {
	InitValidator()

	t.Run("returns cast result", func(t *testing.T) {
		mockSvc := &MockSpellbookService{}
		mockSvc.On("UseSpell", mock.Anything, "discord-1", "lumos").
			Return(&spellbook.CastResult{
				Spell:   &domain.PlayerSpell{SpellID: "lumos", Mastery: 3},
				MPSpent: 2,
			}, nil)

		body, _ := json.Marshal(SpellRequest{DiscordID: "discord-1", SpellID: "lumos"})
		req := httptest.NewRequest("POST", "/spellbook/cast", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleCastSpell(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mp_spent":2`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("insufficient MP", func(t *testing.T) {
		mockSvc := &MockSpellbookService{}
		mockSvc.On("UseSpell", mock.Anything, "discord-1", "bombarda").
			Return(nil, domain.ErrInsufficientMP)

		body, _ := json.Marshal(SpellRequest{DiscordID: "discord-1", SpellID: "bombarda"})
		req := httptest.NewRequest("POST", "/spellbook/cast", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleCastSpell(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughMPError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetSpellbook(t *testing.T) {
	t.Run("lists known spells", func(t *testing.T) {
		mockSvc := &MockSpellbookService{}
		mockSvc.On("GetSpellbook", mock.Anything, "discord-1").
			Return([]spellbook.SpellView{
				{PlayerSpell: domain.PlayerSpell{SpellID: "lumos", Mastery: 5}},
			}, nil)

		req := httptest.NewRequest("GET", "/spellbook?discord_id=discord-1", nil)
		w := httptest.NewRecorder()

		HandleGetSpellbook(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "lumos")
		mockSvc.AssertExpectations(t)
	})
}
