package sorting

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// Sorting quiz errors
var (
	ErrSessionExists = errors.New(ErrMsgSessionExists)
	ErrInvalidOption = errors.New(ErrMsgInvalidOption)
)

// QuestionView is one question as presented: the option order is freshly
// shuffled on every presentation so answer positions cannot be shared.
type QuestionView struct {
	Number   int       `json:"number"`
	Total    int       `json:"total"`
	Question string    `json:"question"`
	Options  [4]string `json:"options"`
}

// Result is the outcome of a completed quiz
type Result struct {
	House    domain.House `json:"house"`
	Scores   [4]int       `json:"scores"`
	TieBreak bool         `json:"tie_break"`
}

// session is one in-flight quiz, owned by the store mutex.
type session struct {
	discordID string
	index     int
	scores    [4]int
	// perms[q][displayed] = original option index for question q
	perms     [][4]int
	createdAt time.Time
	updatedAt time.Time
}

// Service runs sorting quizzes. Sessions live in memory only; an unfinished
// quiz dies with the process, which matches its throwaway nature.
type Service interface {
	Start(ctx context.Context, discordID string) (*QuestionView, error)
	CurrentQuestion(ctx context.Context, discordID string) (*QuestionView, error)
	// Answer scores the displayed option and advances. The view is nil and
	// the result non-nil on the final question.
	Answer(ctx context.Context, discordID string, option int) (*QuestionView, *Result, error)
	Cancel(ctx context.Context, discordID string) error
	Close()
}

type service struct {
	mu       sync.Mutex
	sessions map[string]*session
	rng      *rand.Rand
	bus      event.Bus
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewService creates a sorting service and starts its expiry sweep.
func NewService(bus event.Bus) Service {
	return newService(bus, rand.New(rand.NewSource(time.Now().UnixNano())), SessionTTL, SweepInterval)
}

func newService(bus event.Bus, rng *rand.Rand, ttl, sweepEvery time.Duration) *service {
	s := &service{
		sessions: make(map[string]*session),
		rng:      rng,
		bus:      bus,
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweepLoop(sweepEvery)
	return s
}

func (s *service) Start(ctx context.Context, discordID string) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[discordID]; ok && !s.expired(existing) {
		return nil, ErrSessionExists
	}

	now := time.Now()
	sess := &session{
		discordID: discordID,
		perms:     make([][4]int, len(gamedata.SortingQuestions)),
		createdAt: now,
		updatedAt: now,
	}
	sess.perms[0] = s.shuffleOptions()
	s.sessions[discordID] = sess

	view := s.viewQuestion(sess)
	return &view, nil
}

func (s *service) CurrentQuestion(ctx context.Context, discordID string) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.active(discordID)
	if err != nil {
		return nil, err
	}

	// Every presentation reshuffles and overwrites the stored mapping, so
	// the scored option is always the one the caller last saw.
	sess.perms[sess.index] = s.shuffleOptions()
	view := s.viewQuestion(sess)
	return &view, nil
}

func (s *service) Answer(ctx context.Context, discordID string, option int) (*QuestionView, *Result, error) {
	s.mu.Lock()
	sess, err := s.active(discordID)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}
	if option < 0 || option > 3 {
		s.mu.Unlock()
		return nil, nil, ErrInvalidOption
	}

	question := gamedata.SortingQuestions[sess.index]
	original := sess.perms[sess.index][option]
	for i, points := range question.Options[original].Points {
		sess.scores[i] += points
	}
	sess.index++
	sess.updatedAt = time.Now()

	if sess.index < len(gamedata.SortingQuestions) {
		sess.perms[sess.index] = s.shuffleOptions()
		view := s.viewQuestion(sess)
		s.mu.Unlock()
		return &view, nil, nil
	}

	// Finished: resolve, erase the session, publish outside the lock
	result := s.resolve(sess)
	delete(s.sessions, discordID)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSortingCompleted,
		"discord_id", discordID, "house", string(result.House), "tie_break", result.TieBreak)

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SortingCompleted,
		Payload: event.SortingCompletedPayloadV1{
			DiscordID: discordID,
			House:     string(result.House),
			Scores:    result.Scores[:],
			TieBreak:  result.TieBreak,
		},
	}); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedPublishSort, "error", err)
	}
	return nil, result, nil
}

func (s *service) Cancel(ctx context.Context, discordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[discordID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, discordID)
	return nil
}

// Close stops the expiry sweep
func (s *service) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

// active returns the caller's live session, treating an expired one as gone.
func (s *service) active(discordID string) (*session, error) {
	sess, ok := s.sessions[discordID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, discordID)
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *service) expired(sess *session) bool {
	return time.Since(sess.updatedAt) > s.ttl
}

func (s *service) viewQuestion(sess *session) QuestionView {
	question := gamedata.SortingQuestions[sess.index]
	view := QuestionView{
		Number:   sess.index + 1,
		Total:    len(gamedata.SortingQuestions),
		Question: question.Question,
	}
	for displayed, original := range sess.perms[sess.index] {
		view.Options[displayed] = question.Options[original].Label
	}
	return view
}

// shuffleOptions returns a fresh permutation of the four option positions.
func (s *service) shuffleOptions() [4]int {
	perm := [4]int{0, 1, 2, 3}
	s.rng.Shuffle(4, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// resolve picks the house with the highest score, breaking ties uniformly at
// random among the leaders.
func (s *service) resolve(sess *session) *Result {
	best := sess.scores[0]
	for _, score := range sess.scores[1:] {
		if score > best {
			best = score
		}
	}

	leaders := []int{}
	for i, score := range sess.scores {
		if score == best {
			leaders = append(leaders, i)
		}
	}

	winner := leaders[0]
	if len(leaders) > 1 {
		winner = leaders[s.rng.Intn(len(leaders))]
	}

	return &Result{
		House:    domain.Houses[winner],
		Scores:   sess.scores,
		TieBreak: len(leaders) > 1,
	}
}

func (s *service) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *service) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			logger.Debug(LogMsgSessionSwept, "discord_id", id)
		}
	}
}
