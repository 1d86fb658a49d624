package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
)

func TestGetCharacter(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/character", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "discord-1", r.URL.Query().Get("discord_id"))
		WriteJSON(w, domain.Character{
			Name:  "Harry",
			House: domain.HouseGryffindor,
			Level: 3,
		})
	})

	char, err := ctx.APIClient.GetCharacter("discord-1")
	require.NoError(t, err)
	assert.Equal(t, "Harry", char.Name)
	assert.Equal(t, domain.HouseGryffindor, char.House)
}

func TestGetCharacterNotFound(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/character", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Character not found. Create one with the sorting quiz first",
		})
	})

	_, err := ctx.APIClient.GetCharacter("discord-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error:")
	assert.Contains(t, err.Error(), "Character not found")
}

func TestCreateCharacterSendsBody(t *testing.T) {
	ctx := SetupTestContext(t)

	var got map[string]string
	ctx.Mux.HandleFunc("/api/v1/character/create", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		WriteJSON(w, domain.Character{Name: got["name"]})
	})

	char, err := ctx.APIClient.CreateCharacter("discord-1", "hpotter", "Harry", "Gryffindor")
	require.NoError(t, err)
	assert.Equal(t, "Harry", char.Name)
	assert.Equal(t, map[string]string{
		"discord_id": "discord-1",
		"username":   "hpotter",
		"name":       "Harry",
		"house":      "Gryffindor",
	}, got)
}

func TestAnswerQuizMidAndFinal(t *testing.T) {
	ctx := SetupTestContext(t)

	final := false
	ctx.Mux.HandleFunc("/api/v1/sorting/answer", func(w http.ResponseWriter, r *http.Request) {
		if final {
			WriteJSON(w, map[string]interface{}{
				"result": sorting.Result{House: domain.HouseRavenclaw},
			})
			return
		}
		WriteJSON(w, map[string]interface{}{
			"question": sorting.QuestionView{Number: 2, Total: 7, Question: "next"},
		})
	})

	question, result, err := ctx.APIClient.AnswerQuiz("discord-1", 0)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Nil(t, result)
	assert.Equal(t, 2, question.Number)

	final = true
	question, result, err = ctx.APIClient.AnswerQuiz("discord-1", 3)
	require.NoError(t, err)
	assert.Nil(t, question)
	require.NotNil(t, result)
	assert.Equal(t, domain.HouseRavenclaw, result.House)
}

func TestDoRequestRetriesServerErrors(t *testing.T) {
	ctx := SetupTestContext(t)

	attempts := 0
	ctx.Mux.HandleFunc("/api/v1/character/rest", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		WriteJSON(w, domain.Character{Name: "Harry"})
	})

	char, err := ctx.APIClient.Rest("discord-1")
	require.NoError(t, err)
	assert.Equal(t, "Harry", char.Name)
	assert.Equal(t, 3, attempts)
}

func TestDoRequestDoesNotRetryClientErrors(t *testing.T) {
	ctx := SetupTestContext(t)

	attempts := 0
	ctx.Mux.HandleFunc("/api/v1/spellbook/learn", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "spell not found"})
	})

	_, err := ctx.APIClient.LearnSpell("discord-1", "abracadabra")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
