package algonest

import "time"

// HealthResponse is returned by the /health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a generic {"message": "..."} response.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

// User is the public view of an account.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	Age       *int32    `json:"age,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Joined    time.Time `json:"joined"`
}

// RegisterRequest creates an account. Role is only honoured on admin registration.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"emailID"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// UserResponse is returned by register, login, check and profile update.
type UserResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// --- Problems ---

type TestCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

type StartCode struct {
	Language    string `json:"language"`
	InitialCode string `json:"initialCode"`
}

type ReferenceSolution struct {
	Language     string `json:"language"`
	CompleteCode string `json:"completeCode"`
}

// ProblemSummary is one row of the problem list.
type ProblemSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// Problem is a full problem. HiddenTestCases is only populated for admins.
type Problem struct {
	ID                string              `json:"id"`
	Title             string              `json:"title"`
	Slug              string              `json:"slug"`
	Description       string              `json:"description"`
	Difficulty        string              `json:"difficulty"`
	Tags              []string            `json:"tags"`
	VisibleTestCases  []TestCase          `json:"visibleTestCases"`
	HiddenTestCases   []TestCase          `json:"hiddenTestCases,omitempty"`
	StartCode         []StartCode         `json:"startCode"`
	ReferenceSolution []ReferenceSolution `json:"referenceSolution"`
	FunctionName      string              `json:"functionName,omitempty"`
	IsDailyChallenge  bool                `json:"isDailyChallenge"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// ProblemRequest creates or replaces a problem (admin only).
type ProblemRequest struct {
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	Difficulty        string              `json:"difficulty"`
	Tags              []string            `json:"tags,omitempty"`
	VisibleTestCases  []TestCase          `json:"visibleTestCases"`
	HiddenTestCases   []TestCase          `json:"hiddenTestCases"`
	StartCode         []StartCode         `json:"startCode,omitempty"`
	ReferenceSolution []ReferenceSolution `json:"referenceSolution"`
	FunctionName      string              `json:"functionName,omitempty"`
	IsDailyChallenge  bool                `json:"isDailyChallenge,omitempty"`
}

// CreateProblemResponse is returned by POST /problem/create.
type CreateProblemResponse struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

// --- Submissions ---

// Code is the body of a run or submit.
type Code struct {
	Source   string `json:"code"`
	Language string `json:"language"`
}

// CaseResult is the judge's report for one test case.
type CaseResult struct {
	StatusID       int     `json:"status_id"`
	Status         string  `json:"status"`
	Stdout         string  `json:"stdout"`
	Stderr         string  `json:"stderr"`
	CompileOutput  string  `json:"compile_output"`
	ExpectedOutput string  `json:"expected_output"`
	Time           float64 `json:"time"`
	Memory         int     `json:"memory"`
}

// RunResult is returned by a run. Nothing is stored server-side.
type RunResult struct {
	Success         bool         `json:"success"`
	Status          string       `json:"status"`
	TestCases       []CaseResult `json:"testCases"`
	Runtime         float64      `json:"runtime"`
	Memory          int          `json:"memory"`
	TestCasesPassed int          `json:"testCasesPassed"`
	TotalTestCases  int          `json:"totalTestCases"`
	ErrorMessage    string       `json:"errorMessage,omitempty"`
}

// SubmitResult is returned once a submission is judged.
type SubmitResult struct {
	SubmissionID    string  `json:"submissionId"`
	Accepted        bool    `json:"accepted"`
	Status          string  `json:"status"`
	TotalTestCases  int     `json:"totalTestCases"`
	PassedTestCases int     `json:"passedTestCases"`
	Runtime         float64 `json:"runtime"`
	Memory          int     `json:"memory"`
	Message         string  `json:"message"`
}

// Submission is a stored submission as listed per problem.
type Submission struct {
	ID              string    `json:"id"`
	ProblemID       string    `json:"problem_id"`
	Code            string    `json:"code"`
	Language        string    `json:"language"`
	Status          string    `json:"status"`
	TestCasesPassed int       `json:"test_cases_passed"`
	TestCasesTotal  int       `json:"test_cases_total"`
	Runtime         float64   `json:"runtime"`
	Memory          int       `json:"memory"`
	CreatedAt       time.Time `json:"created_at"`
}

// --- Profile ---

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
	ID          string    `json:"id"`
	ProblemID   string    `json:"problemId"`
	Title       string    `json:"title"`
	Difficulty  string    `json:"difficulty"`
	Status      string    `json:"status"`
	Runtime     float64   `json:"runtime"`
	Memory      int32     `json:"memory"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Dashboard is returned by GET /profile/profile.
type Dashboard struct {
	User              User                      `json:"user"`
	Stats             Stats                     `json:"stats"`
	DifficultyStats   map[string]DifficultyStat `json:"difficultyStats"`
	SolvedProblems    []ProblemSummary          `json:"solvedProblems"`
	RecentSubmissions []RecentSubmission        `json:"recentSubmissions"`
}

type DailyActivity struct {
	Day         string `json:"day"`
	Submissions int64  `json:"submissions"`
	Accepted    int64  `json:"accepted"`
}

type HourlyActivity struct {
	Hour      int32 `json:"hour"`
	DayOfWeek int32 `json:"day_of_week"`
	Count     int64 `json:"count"`
}

// Activity is returned by GET /profile/activity.
type Activity struct {
	Daily  []DailyActivity  `json:"dailyActivity"`
	Hourly []HourlyActivity `json:"hourlyActivity"`
	Since  time.Time        `json:"since"`
}

// ProfileUpdate changes the given fields; nil fields are left alone.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Age       *int32  `json:"age,omitempty"`
}
