package judge

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Poll re-queries tokens until every execution is terminal, the poll budget
// is spent or ctx is done. results[i] always belongs to tokens[i].
func (c *Client) Poll(ctx context.Context, tokens []string) ([]Result, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if err := c.acquirePollSlot(ctx); err != nil {
		return nil, err
	}
	defer c.polls.Release(1)

	for attempt := 1; attempt <= c.maxPolls; attempt++ {
		results, err := c.FetchBatch(ctx, tokens)
		if err != nil {
			return nil, err
		}
		if allTerminal(results) {
			return results, nil
		}
		if attempt == c.maxPolls {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}

	log.Printf("judge: %d executions still pending after %d polls", len(tokens), c.maxPolls)
	return nil, fmt.Errorf("%w after %d polls", ErrPollTimeout, c.maxPolls)
}

// acquirePollSlot waits for a poll slot no longer than the poll budget.
func (c *Client) acquirePollSlot(ctx context.Context) error {
	budget := c.pollInterval * time.Duration(c.maxPolls)
	waitCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	if err := c.polls.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("judge: no poll slot free within %v", budget)
		return fmt.Errorf("%w: no poll slot within %v", ErrPollTimeout, budget)
	}
	return nil
}

// Evaluate submits reqs as one batch and waits for their terminal results.
// Expected output missing from Judge0's reply is filled in from the request.
func (c *Client) Evaluate(ctx context.Context, reqs []Request) ([]Result, error) {
	tokens, err := c.SubmitBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}
	results, err := c.Poll(ctx, tokens)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if results[i].ExpectedOutput == "" {
			results[i].ExpectedOutput = reqs[i].ExpectedOutput
		}
	}
	return results, nil
}

func allTerminal(results []Result) bool {
	for _, r := range results {
		if !r.Terminal() {
			return false
		}
	}
	return true
}
