package judge

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// Config holds the connection settings for a Judge0 CE instance.
// URL is the base URL (e.g. "http://judge0-server:2358" or
// "https://judge0-ce.p.rapidapi.com"). AuthToken is sent as X-Auth-Token for
// self-hosted servers; RapidAPIKey/RapidAPIHost are used for the hosted API.
type Config struct {
	URL          string
	AuthToken    string
	RapidAPIKey  string
	RapidAPIHost string

	PollInterval       time.Duration
	MaxPolls           int
	MaxConcurrentPolls int64
}

// Client talks to the Judge0 batch endpoints.
type Client struct {
	url          string
	authToken    string
	rapidAPIKey  string
	rapidAPIHost string
	client       *http.Client

	pollInterval time.Duration
	maxPolls     int
	polls        *semaphore.Weighted
}

// NewClient constructs a Client from cfg, filling in polling defaults.
func NewClient(cfg Config) *Client {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 30
	}
	if cfg.MaxConcurrentPolls <= 0 {
		cfg.MaxConcurrentPolls = 16
	}
	return &Client{
		url:          strings.TrimRight(cfg.URL, "/"),
		authToken:    cfg.AuthToken,
		rapidAPIKey:  cfg.RapidAPIKey,
		rapidAPIHost: cfg.RapidAPIHost,
		client:       &http.Client{Timeout: 30 * time.Second},
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		polls:        semaphore.NewWeighted(cfg.MaxConcurrentPolls),
	}
}

// SubmitBatch queues every request in a single call and returns one token per
// request, in request order. Any transport problem or a response that is not
// a token array fails the whole batch.
func (c *Client) SubmitBatch(ctx context.Context, reqs []Request) ([]string, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	type item struct {
		SourceCode     string `json:"source_code"`
		LanguageID     int    `json:"language_id"`
		Stdin          string `json:"stdin,omitempty"`
		ExpectedOutput string `json:"expected_output,omitempty"`
	}
	items := make([]item, len(reqs))
	for i, r := range reqs {
		items[i] = item{
			SourceCode:     encode(r.SourceCode),
			LanguageID:     r.LanguageID,
			Stdin:          encode(r.Stdin),
			ExpectedOutput: encode(r.ExpectedOutput),
		}
	}

	bodyJSON, err := json.Marshal(map[string]interface{}{"submissions": items})
	if err != nil {
		return nil, fmt.Errorf("marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url+"/submissions/batch?base64_encoded=true", bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var created []struct {
		Token string `json:"token"`
	}
	if !isJSONArray(raw) {
		return nil, fmt.Errorf("%w: batch response is not an array", ErrTransport)
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("%w: decode batch response: %v", ErrTransport, err)
	}
	if len(created) != len(reqs) {
		return nil, fmt.Errorf("%w: got %d tokens for %d submissions", ErrTransport, len(created), len(reqs))
	}

	tokens := make([]string, len(created))
	for i, sub := range created {
		if sub.Token == "" {
			return nil, fmt.Errorf("%w: submission %d was rejected", ErrTransport, i)
		}
		tokens[i] = sub.Token
	}
	return tokens, nil
}

// FetchBatch queries the current state of every token in one call. Results are
// returned aligned with tokens regardless of the order Judge0 uses.
func (c *Client) FetchBatch(ctx context.Context, tokens []string) ([]Result, error) {
	q := url.Values{}
	q.Set("tokens", strings.Join(tokens, ","))
	q.Set("base64_encoded", "true")
	q.Set("fields", "*")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.url+"/submissions/batch?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setAuth(req)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var body struct {
		Submissions []*rawResult `json:"submissions"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: decode poll response: %v", ErrTransport, err)
	}

	byToken := make(map[string]Result, len(body.Submissions))
	for _, r := range body.Submissions {
		if r == nil {
			continue
		}
		byToken[r.Token] = r.result()
	}

	results := make([]Result, len(tokens))
	for i, t := range tokens {
		r, ok := byToken[t]
		if !ok {
			return nil, fmt.Errorf("%w: no result for token %s", ErrTransport, t)
		}
		results[i] = r
	}
	return results, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: judge0 returned HTTP %d", ErrTransport, resp.StatusCode)
	}
	return raw, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("X-Auth-Token", c.authToken)
	}
	if c.rapidAPIKey != "" {
		req.Header.Set("x-rapidapi-key", c.rapidAPIKey)
		req.Header.Set("x-rapidapi-host", c.rapidAPIHost)
	}
}

type rawResult struct {
	Token    string `json:"token"`
	StatusID int    `json:"status_id"`
	Status   *struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout         *string `json:"stdout"`
	Stderr         *string `json:"stderr"`
	CompileOutput  *string `json:"compile_output"`
	Message        *string `json:"message"`
	ExpectedOutput *string `json:"expected_output"`
	Time           *string `json:"time"`
	Memory         *int    `json:"memory"`
}

func (r *rawResult) result() Result {
	res := Result{
		Token:          r.Token,
		StatusID:       r.StatusID,
		Stdout:         decode(r.Stdout),
		Stderr:         decode(r.Stderr),
		CompileOutput:  decode(r.CompileOutput),
		Message:        decode(r.Message),
		ExpectedOutput: decode(r.ExpectedOutput),
	}
	if r.Status != nil {
		if res.StatusID == 0 {
			res.StatusID = r.Status.ID
		}
		res.Status = r.Status.Description
	}
	if r.Time != nil {
		if t, err := strconv.ParseFloat(*r.Time, 64); err == nil {
			res.Time = t
		}
	}
	if r.Memory != nil {
		res.Memory = *r.Memory
	}
	return res
}

func encode(s string) string {
	if s == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// decode reverses Judge0's base64 encoding. Judge0 wraps the encoded text at
// 60 columns, so newlines are stripped first; undecodable values are kept raw.
func decode(s *string) string {
	if s == nil {
		return ""
	}
	clean := strings.ReplaceAll(*s, "\n", "")
	dec, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return *s
	}
	return string(dec)
}

func isJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
