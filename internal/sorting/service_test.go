package sorting

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/testing/leaktest"
)

func newTestSorting(seed int64) (*service, *event.MemoryBus) {
	bus := event.NewMemoryBus()
	svc := newService(bus, rand.New(rand.NewSource(seed)), SessionTTL, time.Hour)
	return svc, bus
}

// answerByLabel finds a label in the shuffled view and answers it, proving
// the displayed-to-original mapping survives the shuffle.
func answerByLabel(t *testing.T, svc Service, discordID string, view *QuestionView, label string) (*QuestionView, *Result) {
	t.Helper()
	for displayed, option := range view.Options {
		if option == label {
			next, result, err := svc.Answer(context.Background(), discordID, displayed)
			require.NoError(t, err)
			return next, result
		}
	}
	t.Fatalf("label %q not found in options %v", label, view.Options)
	return nil, nil
}

func TestQuizScoresMapThroughShuffle(t *testing.T) {
	svc, bus := newTestSorting(42)
	defer svc.Close()
	ctx := context.Background()

	var completed *event.SortingCompletedPayloadV1
	bus.Subscribe(event.SortingCompleted, func(ctx context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.SortingCompletedPayloadV1](e.Payload)
		if err != nil {
			return err
		}
		completed = &p
		return nil
	})

	view, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Number)
	assert.Equal(t, len(gamedata.SortingQuestions), view.Total)

	// Always pick each question's first authored option, whatever position
	// the shuffle put it in
	var result *Result
	for i, question := range gamedata.SortingQuestions {
		require.NotNil(t, view, "ran out of questions at %d", i)
		assert.Equal(t, question.Question, view.Question)
		view, result = answerByLabel(t, svc, "discord-1", view, question.Options[0].Label)
	}

	require.NotNil(t, result)
	assert.Nil(t, view)

	// Sum of the first options' weight vectors
	var want [4]int
	for _, question := range gamedata.SortingQuestions {
		for i, points := range question.Options[0].Points {
			want[i] += points
		}
	}
	assert.Equal(t, want, result.Scores)
	assert.Equal(t, domain.HouseGryffindor, result.House)
	assert.False(t, result.TieBreak)

	require.NotNil(t, completed)
	assert.Equal(t, "discord-1", completed.DiscordID)
	assert.Equal(t, string(domain.HouseGryffindor), completed.House)

	// Session erased on completion
	_, err = svc.CurrentQuestion(ctx, "discord-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCurrentQuestionReshufflesEachPresentation(t *testing.T) {
	svc, _ := newTestSorting(7)
	defer svc.Close()
	ctx := context.Background()

	first, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	// Re-presenting draws a fresh permutation; within a few views the
	// order differs from the first
	var last *QuestionView
	changed := false
	for i := 0; i < 20 && !changed; i++ {
		last, err = svc.CurrentQuestion(ctx, "discord-1")
		require.NoError(t, err)
		assert.ElementsMatch(t, first.Options[:], last.Options[:])
		changed = last.Options != first.Options
	}
	assert.True(t, changed)

	// The stored mapping is the one from the latest presentation, so a
	// positional answer scores the option the caller last saw
	sess := svc.sessions["discord-1"]
	for displayed, original := range sess.perms[0] {
		assert.Equal(t, gamedata.SortingQuestions[0].Options[original].Label, last.Options[displayed])
	}
}

func TestStartTwiceRejected(t *testing.T) {
	svc, _ := newTestSorting(1)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	_, err = svc.Start(ctx, "discord-1")
	assert.ErrorIs(t, err, ErrSessionExists)

	// Independent per identity
	_, err = svc.Start(ctx, "discord-2")
	assert.NoError(t, err)
}

func TestAnswerValidation(t *testing.T) {
	svc, _ := newTestSorting(1)
	defer svc.Close()
	ctx := context.Background()

	_, _, err := svc.Answer(ctx, "discord-1", 0)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	_, _, err = svc.Answer(ctx, "discord-1", 4)
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, _, err = svc.Answer(ctx, "discord-1", -1)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestCancelErasesSession(t *testing.T) {
	svc, _ := newTestSorting(1)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "discord-1"))
	assert.ErrorIs(t, svc.Cancel(ctx, "discord-1"), domain.ErrSessionNotFound)

	// Cancelling frees the slot for a fresh quiz
	_, err = svc.Start(ctx, "discord-1")
	assert.NoError(t, err)
}

func TestSessionExpiry(t *testing.T) {
	bus := event.NewMemoryBus()
	svc := newService(bus, rand.New(rand.NewSource(1)), 10*time.Millisecond, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = svc.CurrentQuestion(ctx, "discord-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Expired session no longer blocks a new start
	_, err = svc.Start(ctx, "discord-1")
	assert.NoError(t, err)
}

func TestSweepRemovesExpiredSessions(t *testing.T) {
	bus := event.NewMemoryBus()
	svc := newService(bus, rand.New(rand.NewSource(1)), 5*time.Millisecond, 10*time.Millisecond)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Start(ctx, "discord-1")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.sessions) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCloseStopsSweeper(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		bus := event.NewMemoryBus()
		svc := newService(bus, rand.New(rand.NewSource(1)), SessionTTL, 10*time.Millisecond)

		_, err := svc.Start(context.Background(), "discord-1")
		require.NoError(t, err)

		svc.Close()
	})
}

func TestTieBreakIsUniform(t *testing.T) {
	svc, _ := newTestSorting(7)
	defer svc.Close()

	// Three-way tie between houses 0, 1 and 3
	counts := map[domain.House]int{}
	for i := 0; i < 3000; i++ {
		result := svc.resolve(&session{scores: [4]int{9, 9, 2, 9}})
		assert.True(t, result.TieBreak)
		counts[result.House]++
	}

	assert.Zero(t, counts[domain.HouseRavenclaw])
	for _, house := range []domain.House{domain.HouseGryffindor, domain.HouseHufflepuff, domain.HouseSlytherin} {
		assert.InDelta(t, 1000, counts[house], 150, "house %s drawn far from uniformly", house)
	}
}

func TestClearWinnerSkipsTieBreak(t *testing.T) {
	svc, _ := newTestSorting(7)
	defer svc.Close()

	result := svc.resolve(&session{scores: [4]int{3, 12, 7, 5}})
	assert.Equal(t, domain.HouseHufflepuff, result.House)
	assert.False(t, result.TieBreak)
}

func BenchmarkFullQuiz(b *testing.B) {
	bus := event.NewMemoryBus()
	svc := newService(bus, rand.New(rand.NewSource(99)), SessionTTL, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view, err := svc.Start(ctx, "bench")
		if err != nil {
			b.Fatal(err)
		}
		for view != nil {
			view, _, err = svc.Answer(ctx, "bench", 0)
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
