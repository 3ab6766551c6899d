package worker

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/store"
)

const abandonedMessage = "evaluation abandoned"

// Sweeper finalizes submissions left pending by an interrupted evaluation.
type Sweeper struct {
	store      store.Querier
	interval   time.Duration
	staleAfter time.Duration
	now        func() time.Time
}

// New returns a Sweeper. Non-positive durations fall back to one minute
// between sweeps and a ten minute stale threshold.
func New(q store.Querier, interval, staleAfter time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if staleAfter <= 0 {
		staleAfter = 10 * time.Minute
	}
	return &Sweeper{
		store:      q,
		interval:   interval,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// Start sweeps once per interval. It blocks until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.store.FailStaleSubmissions(ctx, store.FailStaleSubmissionsParams{
		CreatedAt:    s.now().Add(-s.staleAfter),
		ErrorMessage: pgtype.Text{String: abandonedMessage, Valid: true},
	})
	if err != nil {
		log.Printf("worker: sweep error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("worker: marked %d stale submissions as error", n)
	}
}
