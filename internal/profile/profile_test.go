package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/store"
)

type stubQuerier struct {
	store.Querier

	solved []store.ListSolvedProblemsRow
	totals []store.CountProblemsByDifficultyRow
	counts store.CountSubmissionStatsRow
	recent []store.ListRecentSubmissionsRow
	days   []store.ListDailyActivityRow
	hours  []store.ListHourlyActivityRow

	gotSince time.Time
}

func (s *stubQuerier) ListSolvedProblems(context.Context, uuid.UUID) ([]store.ListSolvedProblemsRow, error) {
	return s.solved, nil
}
func (s *stubQuerier) CountProblemsByDifficulty(context.Context) ([]store.CountProblemsByDifficultyRow, error) {
	return s.totals, nil
}
func (s *stubQuerier) CountSubmissionStats(context.Context, uuid.UUID) (store.CountSubmissionStatsRow, error) {
	return s.counts, nil
}
func (s *stubQuerier) ListRecentSubmissions(_ context.Context, arg store.ListRecentSubmissionsParams) ([]store.ListRecentSubmissionsRow, error) {
	return s.recent, nil
}
func (s *stubQuerier) ListDailyActivity(_ context.Context, arg store.ListDailyActivityParams) ([]store.ListDailyActivityRow, error) {
	s.gotSince = arg.CreatedAt
	return s.days, nil
}
func (s *stubQuerier) ListHourlyActivity(context.Context, store.ListHourlyActivityParams) ([]store.ListHourlyActivityRow, error) {
	return s.hours, nil
}

func day(t time.Time, offset int) string {
	return t.AddDate(0, 0, offset).Format(dayLayout)
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	row := func(offset int) store.ListDailyActivityRow {
		return store.ListDailyActivityRow{Day: day(now, offset), Submissions: 1}
	}

	cases := []struct {
		name string
		days []store.ListDailyActivityRow
		want int
	}{
		{"none", nil, 0},
		{"today only", []store.ListDailyActivityRow{row(0)}, 1},
		{"through today", []store.ListDailyActivityRow{row(-2), row(-1), row(0)}, 3},
		{"ends yesterday", []store.ListDailyActivityRow{row(-3), row(-2), row(-1)}, 3},
		{"gap breaks streak", []store.ListDailyActivityRow{row(-4), row(-2), row(-1), row(0)}, 3},
		{"stale", []store.ListDailyActivityRow{row(-5), row(-4)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(tc.days, now); got != tc.want {
				t.Errorf("Streak() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		part, total int64
		want        int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := Percentage(tc.part, tc.total); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	q := &stubQuerier{
		solved: []store.ListSolvedProblemsRow{
			{ID: uuid.New(), Title: "Two Sum", Difficulty: "easy"},
			{ID: uuid.New(), Title: "LRU Cache", Difficulty: "medium"},
			{ID: uuid.New(), Title: "Valid Parentheses", Difficulty: "easy"},
		},
		totals: []store.CountProblemsByDifficultyRow{
			{Difficulty: "easy", Total: 4},
			{Difficulty: "medium", Total: 3},
			{Difficulty: "hard", Total: 3},
		},
		counts: store.CountSubmissionStatsRow{Total: 8, Accepted: 6},
		recent: []store.ListRecentSubmissionsRow{
			{ID: uuid.New(), ProblemTitle: "Two Sum", ProblemDifficulty: "easy", Status: "accepted"},
		},
		days: []store.ListDailyActivityRow{
			{Day: day(now, -1), Submissions: 2},
			{Day: day(now, 0), Submissions: 1},
		},
	}
	svc := NewService(q)
	svc.now = func() time.Time { return now }

	u := store.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com", Role: "user", Age: pgtype.Int4{Int32: 36, Valid: true}}
	p, err := svc.Build(context.Background(), u)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if p.Stats.TotalProblems != 10 || p.Stats.SolvedProblems != 3 || p.Stats.SolvedPercentage != 30 {
		t.Errorf("unexpected totals %+v", p.Stats)
	}
	if p.Stats.Accuracy != 75 {
		t.Errorf("expected accuracy 75, got %d", p.Stats.Accuracy)
	}
	if p.Stats.Streak != 2 {
		t.Errorf("expected streak 2, got %d", p.Stats.Streak)
	}
	if got := p.DifficultyStats["easy"]; got.Solved != 2 || got.Total != 4 || got.Percentage != 50 {
		t.Errorf("unexpected easy stats %+v", got)
	}
	if got := p.DifficultyStats["hard"]; got.Solved != 0 || got.Percentage != 0 {
		t.Errorf("unexpected hard stats %+v", got)
	}
	if len(p.RecentSubmissions) != 1 || p.RecentSubmissions[0].Title != "Two Sum" {
		t.Errorf("unexpected recent submissions %+v", p.RecentSubmissions)
	}
	if p.User.Age == nil || *p.User.Age != 36 {
		t.Errorf("expected age 36, got %v", p.User.Age)
	}
}

func TestActivity_EmptySlices(t *testing.T) {
	q := &stubQuerier{}
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewService(q).Activity(context.Background(), uuid.New(), since)
	if err != nil {
		t.Fatalf("Activity: %v", err)
	}
	if a.Daily == nil || a.Hourly == nil {
		t.Error("activity lists should be empty, not null")
	}
	if !q.gotSince.Equal(since) {
		t.Errorf("expected since %v, got %v", since, q.gotSince)
	}
}
