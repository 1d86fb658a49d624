package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/inventory"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
	"github.com/mirefall/GrimoireBot_Go/internal/spellbook"
)

// apiBasePath is the versioned prefix of the game API
const apiBasePath = "/api/v1"

// APIClient handles communication with the GrimoireBot game API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s%s", c.BaseURL, apiBasePath, path)

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// apiError extracts the error message from a non-2xx response body
func apiError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// decodeBody decodes a JSON response body into dst
func decodeBody(resp *http.Response, dst interface{}) error {
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CreateCharacter registers a new character after the sorting quiz
func (c *APIClient) CreateCharacter(discordID, username, name, house string) (*domain.Character, error) {
	req := map[string]string{
		"discord_id": discordID,
		"username":   username,
		"name":       name,
		"house":      house,
	}

	resp, err := c.doRequest(http.MethodPost, "/character/create", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var char domain.Character
	if err := decodeBody(resp, &char); err != nil {
		return nil, err
	}
	return &char, nil
}

// GetCharacter retrieves the character bound to a Discord identity
func (c *APIClient) GetCharacter(discordID string) (*domain.Character, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	resp, err := c.doRequest(http.MethodGet, "/character?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var char domain.Character
	if err := decodeBody(resp, &char); err != nil {
		return nil, err
	}
	return &char, nil
}

// Rest restores the character's hp and mp
func (c *APIClient) Rest(discordID string) (*domain.Character, error) {
	req := map[string]string{"discord_id": discordID}

	resp, err := c.doRequest(http.MethodPost, "/character/rest", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var char domain.Character
	if err := decodeBody(resp, &char); err != nil {
		return nil, err
	}
	return &char, nil
}

// GetLeaderboard retrieves the top characters, optionally within one house
func (c *APIClient) GetLeaderboard(house string, limit int) ([]domain.Character, error) {
	params := url.Values{}
	if house != "" {
		params.Set("house", house)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.doRequest(http.MethodGet, "/character/leaderboard?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var board struct {
		Data []domain.Character `json:"data"`
	}
	if err := decodeBody(resp, &board); err != nil {
		return nil, err
	}
	return board.Data, nil
}

// GetInventory retrieves the character's inventory
func (c *APIClient) GetInventory(discordID string) (*inventory.View, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	resp, err := c.doRequest(http.MethodGet, "/inventory?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var view inventory.View
	if err := decodeBody(resp, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// UseItem consumes or activates an owned item
func (c *APIClient) UseItem(discordID, itemID string) (*inventory.UseResult, error) {
	req := map[string]string{
		"discord_id": discordID,
		"item_id":    itemID,
	}

	resp, err := c.doRequest(http.MethodPost, "/inventory/use", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result inventory.UseResult
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EquipItem equips an inventory record into its slot
func (c *APIClient) EquipItem(discordID, recordID string) (*domain.Character, error) {
	req := map[string]string{
		"discord_id": discordID,
		"record_id":  recordID,
	}

	resp, err := c.doRequest(http.MethodPost, "/inventory/equip", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var char domain.Character
	if err := decodeBody(resp, &char); err != nil {
		return nil, err
	}
	return &char, nil
}

// GetMarket retrieves current player-to-player listings
func (c *APIClient) GetMarket(itemID string, limit int) ([]domain.InventoryRecord, error) {
	params := url.Values{}
	if itemID != "" {
		params.Set("item_id", itemID)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.doRequest(http.MethodGet, "/market?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var listings struct {
		Data []domain.InventoryRecord `json:"data"`
	}
	if err := decodeBody(resp, &listings); err != nil {
		return nil, err
	}
	return listings.Data, nil
}

// GetSpellbook retrieves the character's learned spells
func (c *APIClient) GetSpellbook(discordID string) ([]spellbook.SpellView, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	resp, err := c.doRequest(http.MethodGet, "/spellbook?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var book struct {
		Data []spellbook.SpellView `json:"data"`
	}
	if err := decodeBody(resp, &book); err != nil {
		return nil, err
	}
	return book.Data, nil
}

// LearnSpell adds a spell to the character's spellbook
func (c *APIClient) LearnSpell(discordID, spellID string) (string, error) {
	req := map[string]string{
		"discord_id": discordID,
		"spell_id":   spellID,
	}

	resp, err := c.doRequest(http.MethodPost, "/spellbook/learn", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	var learnResp struct {
		Message string `json:"message"`
	}
	if err := decodeBody(resp, &learnResp); err != nil {
		return "", err
	}
	return learnResp.Message, nil
}

// CastSpell casts a known spell, spending mp and training mastery
func (c *APIClient) CastSpell(discordID, spellID string) (*spellbook.CastResult, error) {
	req := map[string]string{
		"discord_id": discordID,
		"spell_id":   spellID,
	}

	resp, err := c.doRequest(http.MethodPost, "/spellbook/cast", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result spellbook.CastResult
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StartQuiz begins a sorting quiz session
func (c *APIClient) StartQuiz(discordID string) (*sorting.QuestionView, error) {
	req := map[string]string{"discord_id": discordID}

	resp, err := c.doRequest(http.MethodPost, "/sorting/start", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var question sorting.QuestionView
	if err := decodeBody(resp, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// AnswerQuiz submits an answer. Exactly one of the question (more to come)
// and the result (quiz finished) is non-nil on success.
func (c *APIClient) AnswerQuiz(discordID string, option int) (*sorting.QuestionView, *sorting.Result, error) {
	req := map[string]interface{}{
		"discord_id": discordID,
		"option":     option,
	}

	resp, err := c.doRequest(http.MethodPost, "/sorting/answer", req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, apiError(resp)
	}

	var answerResp struct {
		Question *sorting.QuestionView `json:"question,omitempty"`
		Result   *sorting.Result       `json:"result,omitempty"`
	}
	if err := decodeBody(resp, &answerResp); err != nil {
		return nil, nil, err
	}
	return answerResp.Question, answerResp.Result, nil
}

// CancelQuiz abandons an in-progress sorting quiz
func (c *APIClient) CancelQuiz(discordID string) error {
	req := map[string]string{"discord_id": discordID}

	resp, err := c.doRequest(http.MethodPost, "/sorting/cancel", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// GetArtifacts retrieves every unique world artifact
func (c *APIClient) GetArtifacts() ([]domain.WorldItem, error) {
	resp, err := c.doRequest(http.MethodGet, "/artifact/all", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var artifacts struct {
		Data []domain.WorldItem `json:"data"`
	}
	if err := decodeBody(resp, &artifacts); err != nil {
		return nil, err
	}
	return artifacts.Data, nil
}

// ClaimArtifact attempts to claim an unclaimed world artifact
func (c *APIClient) ClaimArtifact(discordID, itemID string) (*domain.WorldItem, error) {
	req := map[string]string{
		"discord_id": discordID,
		"item_id":    itemID,
	}

	resp, err := c.doRequest(http.MethodPost, "/artifact/claim", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var artifact domain.WorldItem
	if err := decodeBody(resp, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}
