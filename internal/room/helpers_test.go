package room

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/scribble-backend/internal/common/clock"
	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/wordbank"
)

type delivery struct {
	to      []string
	event   string
	payload any
}

// recorder is a Notifier that keeps every delivery in order.
type recorder struct {
	mu         sync.Mutex
	deliveries []delivery
}

func (r *recorder) Notify(connIDs []string, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deliveries = append(r.deliveries, delivery{to: slices.Clone(connIDs), event: event, payload: payload})
}

// received returns the payloads of event delivered to connID, in order.
func (r *recorder) received(connID, event string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	var payloads []any
	for _, d := range r.deliveries {
		if d.event == event && slices.Contains(d.to, connID) {
			payloads = append(payloads, d.payload)
		}
	}

	return payloads
}

// events returns the event names delivered to connID, in order.
func (r *recorder) events(connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var names []string
	for _, d := range r.deliveries {
		if slices.Contains(d.to, connID) {
			names = append(names, d.event)
		}
	}

	return names
}

func (r *recorder) count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, d := range r.deliveries {
		if d.event == event {
			n++
		}
	}

	return n
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deliveries = nil
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Record(result entity.RoundResult) {
	m.Called(result)
}

func testGameConfig() config.Game {
	return config.Game{
		MinPlayers:        2,
		MaxPlayers:        4,
		RoundDuration:     10 * time.Second,
		TickInterval:      time.Second,
		ReadyTimeout:      5 * time.Second,
		CorrectGuessAward: 100,
		MinAward:          10,
		RecentWords:       1,
		MaxStrokes:        100,
		MaxUsernameLength: 12,
		MaxChatLength:     50,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	room    *Room
	notes   *recorder
	clock   *clock.Fake
	history *mockHistory
}

// newFixture builds a room whose word bank only knows the given words.
func newFixture(t *testing.T, conf config.Game, words ...string) *fixture {
	t.Helper()

	if len(words) == 0 {
		words = []string{"apple"}
	}

	bank, err := wordbank.New(words, nil)
	require.NoError(t, err)

	f := &fixture{
		notes:   &recorder{},
		clock:   clock.NewFake(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)),
		history: &mockHistory{},
	}
	f.history.On("Record", mock.AnythingOfType("entity.RoundResult")).Maybe()

	f.room = New("test", discardLogger(), conf, Deps{
		Notifier: f.notes,
		Words:    bank,
		Clock:    f.clock,
		History:  f.history,
	})
	t.Cleanup(f.room.Close)

	return f
}

func (f *fixture) join(t *testing.T, connID, username string) {
	t.Helper()

	_, err := f.room.Join(connID, username)
	require.NoError(t, err)
}

func segment(x float64) entity.DrawData {
	return entity.DrawData{
		From:      entity.Point{X: x, Y: x},
		To:        entity.Point{X: x + 5, Y: x + 5},
		Color:     "#112233",
		LineWidth: 2,
	}
}
