package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "character not found",
			msg:  "API error: character not found",
			want: MsgCharacterNotFound,
		},
		{
			name: "character exists",
			msg:  "API error: character already exists",
			want: MsgCharacterExists,
		},
		{
			name: "insufficient galleons",
			msg:  "API error: insufficient galleons",
			want: MsgInsufficientGalleons,
		},
		{
			name: "inventory full",
			msg:  "API error: inventory is full",
			want: MsgInventoryFull,
		},
		{
			name: "insufficient mp",
			msg:  "API error: insufficient mp",
			want: MsgNotEnoughMP,
		},
		{
			name: "spell not known",
			msg:  "API error: spell not known",
			want: MsgSpellNotKnown,
		},
		{
			name: "no quiz session",
			msg:  "API error: no active sorting session",
			want: MsgNoQuizActive,
		},
		{
			name: "wrapped message still matches",
			msg:  "API error: use item: item not found",
			want: MsgItemNotFound,
		},
		{
			name: "unknown error passes through with marker",
			msg:  "API error: the owl got lost",
			want: "❌ the owl got lost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.msg))
		})
	}
}
