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

	"github.com/mirefall/GrimoireBot_Go/internal/character"
	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// MockCharacterService mocks the character.Service interface
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) CreateCharacter(ctx context.Context, discordID, discordUsername, name string, house domain.House) (*domain.Character, error) {
	args := m.Called(ctx, discordID, discordUsername, name, house)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) DeleteCharacter(ctx context.Context, discordID string) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

func (m *MockCharacterService) AddExperience(ctx context.Context, discordID string, amount int, source string) (*character.ExperienceResult, error) {
	args := m.Called(ctx, discordID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.ExperienceResult), args.Error(1)
}

func (m *MockCharacterService) AssignAttributePoints(ctx context.Context, discordID string, allocations map[domain.StatKey]int) (*domain.Character, error) {
	args := m.Called(ctx, discordID, allocations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) RecalculateStats(ctx context.Context, discordID string) (*domain.Character, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Rest(ctx context.Context, discordID string) (*domain.Character, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) TakeDamage(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	args := m.Called(ctx, discordID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Heal(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	args := m.Called(ctx, discordID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) AddGalleons(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	args := m.Called(ctx, discordID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockCharacterService) GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error) {
	args := m.Called(ctx, house, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func TestHandleCreateCharacter(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockCharacterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: CreateCharacterRequest{
				DiscordID: "discord-1",
				Username:  "hpotter",
				Name:      "Harry",
				House:     "gryffindor",
			},
			setupMock: func(m *MockCharacterService) {
				m.On("CreateCharacter", mock.Anything, "discord-1", "hpotter", "Harry", domain.HouseGryffindor).
					Return(&domain.Character{Name: "Harry", House: domain.HouseGryffindor}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Harry",
		},
		{
			name: "Invalid house rejected by validation",
			requestBody: CreateCharacterRequest{
				DiscordID: "discord-1",
				Username:  "hpotter",
				Name:      "Harry",
				House:     "ilvermorny",
			},
			setupMock:      func(m *MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name: "Missing name rejected by validation",
			requestBody: CreateCharacterRequest{
				DiscordID: "discord-1",
				Username:  "hpotter",
				House:     "gryffindor",
			},
			setupMock:      func(m *MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name: "Duplicate character",
			requestBody: CreateCharacterRequest{
				DiscordID: "discord-1",
				Username:  "hpotter",
				Name:      "Harry",
				House:     "gryffindor",
			},
			setupMock: func(m *MockCharacterService) {
				m.On("CreateCharacter", mock.Anything, "discord-1", "hpotter", "Harry", domain.HouseGryffindor).
					Return(nil, domain.ErrCharacterExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgCharacterExistsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockCharacterService{}
			tt.setupMock(mockSvc)

			handler := HandleCreateCharacter(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/character/create", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetCharacter(t *testing.T) {
	t.Run("returns character", func(t *testing.T) {
		mockSvc := &MockCharacterService{}
		mockSvc.On("GetByDiscordID", mock.Anything, "discord-1").
			Return(&domain.Character{Name: "Hermione", House: domain.HouseGryffindor}, nil)

		req := httptest.NewRequest("GET", "/character?discord_id=discord-1", nil)
		w := httptest.NewRecorder()

		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hermione")
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing discord_id", func(t *testing.T) {
		mockSvc := &MockCharacterService{}

		req := httptest.NewRequest("GET", "/character", nil)
		w := httptest.NewRecorder()

		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "discord_id")
	})

	t.Run("character not found", func(t *testing.T) {
		mockSvc := &MockCharacterService{}
		mockSvc.On("GetByDiscordID", mock.Anything, "ghost").
			Return(nil, domain.ErrCharacterNotFound)

		req := httptest.NewRequest("GET", "/character?discord_id=ghost", nil)
		w := httptest.NewRecorder()

		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgCharacterNotFoundError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGrantExperience(t *testing.T) {
	InitValidator()

	t.Run("grants experience", func(t *testing.T) {
		mockSvc := &MockCharacterService{}
		mockSvc.On("AddExperience", mock.Anything, "discord-1", 150, "quest").
			Return(&character.ExperienceResult{
				Character:    &domain.Character{Level: 2},
				Amount:       150,
				LevelsGained: 1,
			}, nil)

		body, _ := json.Marshal(GrantExperienceRequest{
			DiscordID: "discord-1",
			Amount:    150,
			Source:    "quest",
		})
		req := httptest.NewRequest("POST", "/character/experience", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleGrantExperience(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"levels_gained":1`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		mockSvc := &MockCharacterService{}

		body, _ := json.Marshal(GrantExperienceRequest{DiscordID: "discord-1", Amount: -5})
		req := httptest.NewRequest("POST", "/character/experience", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleGrantExperience(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("defaults to global leaderboard", func(t *testing.T) {
		mockSvc := &MockCharacterService{}
		mockSvc.On("GetLeaderboard", mock.Anything, character.DefaultLeaderboardSize).
			Return([]domain.Character{{Name: "Luna"}}, nil)

		req := httptest.NewRequest("GET", "/character/leaderboard", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Luna")
		mockSvc.AssertExpectations(t)
	})

	t.Run("house filter uses house leaderboard", func(t *testing.T) {
		mockSvc := &MockCharacterService{}
		mockSvc.On("GetHouseLeaderboard", mock.Anything, domain.HouseRavenclaw, 5).
			Return([]domain.Character{}, nil)

		req := httptest.NewRequest("GET", "/character/leaderboard?house=Ravenclaw&limit=5", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		mockSvc := &MockCharacterService{}

		req := httptest.NewRequest("GET", "/character/leaderboard?limit=zero", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}
