// testclient runs a solution file against a problem on an AlgoNest server,
// for exercising the judge pipeline end-to-end.
//
// Usage:
//
//	go run ./cmd/testclient -email ada@example.com -password 'Sup3r$ecret' \
//	    -problem <problem-id> -lang python -file solution.py [-submit]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	algonest "github.com/algonest/algonest/sdk"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "AlgoNest server URL")
		email     = flag.String("email", "", "account email")
		password  = flag.String("password", "", "account password")
		problemID = flag.String("problem", "", "problem id (defaults to the daily challenge)")
		lang      = flag.String("lang", "python", "source language")
		file      = flag.String("file", "", "solution file")
		submit    = flag.Bool("submit", false, "submit against hidden cases instead of running")
		timeout   = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	if *email == "" || *password == "" || *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	src, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := algonest.New(*baseURL)
	if _, err := client.Auth.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login: %v", err)
	}
	defer client.Auth.Logout(context.Background())

	if *problemID == "" {
		p, err := client.Problems.Daily(ctx)
		if err != nil {
			log.Fatalf("daily problem: %v", err)
		}
		log.Printf("using daily challenge %q", p.Title)
		*problemID = p.ID
	}

	code := algonest.Code{Source: string(src), Language: *lang}
	if *submit {
		res, err := client.Submissions.Submit(ctx, *problemID, code)
		if err != nil {
			log.Fatalf("submit: %v", err)
		}
		fmt.Printf("%s: %d/%d passed, %.3fs, %d KB\n%s\n",
			res.Status, res.PassedTestCases, res.TotalTestCases, res.Runtime, res.Memory, res.Message)
		return
	}

	res, err := client.Submissions.Run(ctx, *problemID, code)
	if err != nil {
		if algonest.IsRateLimited(err) {
			log.Fatalf("run: rate limited, retry after %ss", err.(*algonest.APIError).RetryAfter)
		}
		log.Fatalf("run: %v", err)
	}
	for i, tc := range res.TestCases {
		fmt.Printf("case %d: %s (%.3fs)\n", i+1, tc.Status, tc.Time)
		if tc.Stdout != "" {
			fmt.Printf("  stdout: %s\n", tc.Stdout)
		}
		if tc.Stderr != "" {
			fmt.Printf("  stderr: %s\n", tc.Stderr)
		}
	}
	fmt.Printf("%s: %d/%d passed\n", res.Status, res.TestCasesPassed, res.TotalTestCases)
	if res.ErrorMessage != "" {
		fmt.Println(res.ErrorMessage)
	}
}
