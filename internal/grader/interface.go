// Package grader grades a learner's answer to a unit-conversion question.
package grader

import (
	"context"
	"time"
	"unitgrader/pkg/domain"
)

//go:generate mockgen -package mockgrader -source=interface.go -destination=mock/mockgrader.go *
type Grader interface {
	// Grade returns the outcome for a question and the learner's response. It
	// never fails: every problem resolves to one of the three outcomes.
	Grade(ctx context.Context, q domain.Question) domain.Outcome
	// Answer returns the expected answer, rounded to one decimal place, for a
	// well-formed question.
	Answer(ctx context.Context, inputValue, fromUnit, toUnit string) (float64, error)
}

// Recorder receives one observation per graded question.
type Recorder interface {
	RecordGrade(ctx context.Context, category domain.Category, outcome domain.Outcome, elapsed time.Duration)
}
