// Package main is the consistency smoke test: it enumerates every
// emotion, its moods, and each mood's guidance against a running server,
// then exits with the number of moods whose guidance is missing. Exit 0
// means the served catalog is fully consistent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	clientapi "github.com/shloka-app/shloka-server/internal/client/api"
	"github.com/shloka-app/shloka-server/internal/smoke"
)

func main() {
	apiURL := flag.String("api", envOr("SHLOKA_API_URL", "http://localhost:8080"), "server base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline for the walk")
	verbose := flag.Bool("v", false, "print every mood, not just failures")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner := smoke.New(clientapi.New(*apiURL, "smoke-test"), os.Stdout, *verbose)

	report, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoke: %v\n", err)
		os.Exit(1)
	}

	// The exit status is the missing count, capped to stay inside the
	// single byte an exit code carries.
	missing := len(report.Missing())
	if missing > 125 {
		missing = 125
	}
	os.Exit(missing)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
