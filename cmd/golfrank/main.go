package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/njgolf/golfrank/internal/ranking"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Run completed
	ExitValidation = 1 // Input data or validate checks failed
	ExitError      = 2 // Configuration or runtime error
)

// IssuesError indicates that validate ran to completion but found problems.
type IssuesError struct {
	Count int
}

func (e *IssuesError) Error() string {
	return fmt.Sprintf("validation found %d issue(s)", e.Count)
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var issuesErr *IssuesError
	if errors.As(err, &issuesErr) || errors.Is(err, ranking.ErrValidation) {
		return ExitValidation
	}
	return ExitError
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
