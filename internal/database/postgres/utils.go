package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseCharacterUUID parses a character ID string to uuid.UUID with a
// consistent error message.
func parseCharacterUUID(characterID string) (uuid.UUID, error) {
	u, err := uuid.Parse(characterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid character id: %w", err)
	}
	return u, nil
}

// marshalJSON marshals a value for a JSONB column, naming the field on error.
func marshalJSON(field string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", field, err)
	}
	return data, nil
}

// unmarshalJSON unmarshals a JSONB column, naming the field on error.
// Empty input is treated as the zero value.
func unmarshalJSON(field string, data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", field, err)
	}
	return nil
}
