// Package profile builds the progress dashboard for a user.
package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/algonest/algonest/internal/store"
)

const (
	recentLimit  = 10
	streakWindow = 366 * 24 * time.Hour
	dayLayout    = "2006-01-02"
)

var difficulties = []string{"easy", "medium", "hard"}

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	Age       *int32    `json:"age,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Joined    time.Time `json:"joined"`
}

type Stats struct {
	TotalProblems       int64 `json:"totalProblems"`
	SolvedProblems      int64 `json:"solvedProblems"`
	SolvedPercentage    int   `json:"solvedPercentage"`
	Accuracy            int   `json:"accuracy"`
	Streak              int   `json:"streak"`
	TotalSubmissions    int64 `json:"totalSubmissions"`
	AcceptedSubmissions int64 `json:"acceptedSubmissions"`
}

type DifficultyStat struct {
	Solved     int64 `json:"solved"`
	Total      int64 `json:"total"`
	Percentage int   `json:"percentage"`
}

type RecentSubmission struct {
	ID          uuid.UUID `json:"id"`
	ProblemID   uuid.UUID `json:"problemId"`
	Title       string    `json:"title"`
	Difficulty  string    `json:"difficulty"`
	Status      string    `json:"status"`
	Runtime     float64   `json:"runtime"`
	Memory      int32     `json:"memory"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Profile struct {
	User              User                          `json:"user"`
	Stats             Stats                         `json:"stats"`
	DifficultyStats   map[string]DifficultyStat     `json:"difficultyStats"`
	SolvedProblems    []store.ListSolvedProblemsRow `json:"solvedProblems"`
	RecentSubmissions []RecentSubmission            `json:"recentSubmissions"`
}

type Activity struct {
	Daily  []store.ListDailyActivityRow  `json:"dailyActivity"`
	Hourly []store.ListHourlyActivityRow `json:"hourlyActivity"`
	Since  time.Time                     `json:"since"`
}

type Service struct {
	queries store.Querier
	now     func() time.Time
}

func NewService(queries store.Querier) *Service {
	return &Service{queries: queries, now: time.Now}
}

// Build assembles the dashboard for u.
func (s *Service) Build(ctx context.Context, u store.User) (*Profile, error) {
	solved, err := s.queries.ListSolvedProblems(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list solved: %w", err)
	}
	totals, err := s.queries.CountProblemsByDifficulty(ctx)
	if err != nil {
		return nil, fmt.Errorf("count problems: %w", err)
	}
	counts, err := s.queries.CountSubmissionStats(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	recent, err := s.queries.ListRecentSubmissions(ctx, store.ListRecentSubmissionsParams{UserID: u.ID, Limit: recentLimit})
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	now := s.now().UTC()
	days, err := s.queries.ListDailyActivity(ctx, store.ListDailyActivityParams{UserID: u.ID, CreatedAt: now.Add(-streakWindow)})
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	p := &Profile{
		User:            PublicUser(u),
		DifficultyStats: difficultyStats(solved, totals),
		SolvedProblems:  solved,
	}
	if p.SolvedProblems == nil {
		p.SolvedProblems = []store.ListSolvedProblemsRow{}
	}

	var total int64
	for _, t := range totals {
		total += t.Total
	}
	p.Stats = Stats{
		TotalProblems:       total,
		SolvedProblems:      int64(len(solved)),
		SolvedPercentage:    Percentage(int64(len(solved)), total),
		Accuracy:            Percentage(counts.Accepted, counts.Total),
		Streak:              Streak(days, now),
		TotalSubmissions:    counts.Total,
		AcceptedSubmissions: counts.Accepted,
	}

	p.RecentSubmissions = make([]RecentSubmission, len(recent))
	for i, r := range recent {
		p.RecentSubmissions[i] = RecentSubmission{
			ID:          r.ID,
			ProblemID:   r.ProblemID,
			Title:       r.ProblemTitle,
			Difficulty:  r.ProblemDifficulty,
			Status:      r.Status,
			Runtime:     r.Runtime,
			Memory:      r.Memory,
			SubmittedAt: r.CreatedAt,
		}
	}
	return p, nil
}

// Activity returns per-day and per-hour submission counts since the given time.
func (s *Service) Activity(ctx context.Context, userID uuid.UUID, since time.Time) (*Activity, error) {
	daily, err := s.queries.ListDailyActivity(ctx, store.ListDailyActivityParams{UserID: userID, CreatedAt: since})
	if err != nil {
		return nil, fmt.Errorf("list daily activity: %w", err)
	}
	hourly, err := s.queries.ListHourlyActivity(ctx, store.ListHourlyActivityParams{UserID: userID, CreatedAt: since})
	if err != nil {
		return nil, fmt.Errorf("list hourly activity: %w", err)
	}
	if daily == nil {
		daily = []store.ListDailyActivityRow{}
	}
	if hourly == nil {
		hourly = []store.ListHourlyActivityRow{}
	}
	return &Activity{Daily: daily, Hourly: hourly, Since: since}, nil
}

// Percentage returns part/total as a rounded whole percentage, 0 when total is 0.
func Percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Streak counts consecutive UTC days with at least one submission, ending
// today or, when today has none yet, yesterday.
func Streak(days []store.ListDailyActivityRow, now time.Time) int {
	active := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Submissions > 0 {
			active[d.Day] = true
		}
	}

	day := now.UTC()
	if !active[day.Format(dayLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for active[day.Format(dayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func difficultyStats(solved []store.ListSolvedProblemsRow, totals []store.CountProblemsByDifficultyRow) map[string]DifficultyStat {
	out := make(map[string]DifficultyStat, len(difficulties))
	for _, d := range difficulties {
		out[d] = DifficultyStat{}
	}
	for _, t := range totals {
		st := out[t.Difficulty]
		st.Total = t.Total
		out[t.Difficulty] = st
	}
	for _, p := range solved {
		st := out[p.Difficulty]
		st.Solved++
		out[p.Difficulty] = st
	}
	for d, st := range out {
		st.Percentage = Percentage(st.Solved, st.Total)
		out[d] = st
	}
	return out
}

// PublicUser is the account view returned by auth and profile endpoints.
func PublicUser(u store.User) User {
	out := User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName.String,
		Email:     u.Email,
		Role:      u.Role,
		Joined:    u.CreatedAt,
	}
	if u.Age.Valid {
		age := u.Age.Int32
		out.Age = &age
	}
	return out
}

