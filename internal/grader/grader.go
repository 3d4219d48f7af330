package grader

import (
	"context"
	"time"
	"unitgrader/internal/conversion"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure optional collaborators of the grader.
type Options struct {
	// Recorder, when set, observes every graded question.
	Recorder Recorder
}

// grader is the concrete implementation of the Grader interface.
type grader struct {
	// options holds optional collaborators.
	options Options
	// table is the conversion table; its registry defines the known units.
	table *conversion.Table
}

// Grade grades a learner's response. The decision runs in order:
//  1. the question is validated (numeric input value, known units of one
//     category); failure is graded invalid
//  2. a response that is not numeric is graded incorrect
//  3. the expected answer is computed; if that fails the question is invalid
//  4. the response rounded to one decimal place must equal the expected answer
//
// Each call gets its own grading ID in the context logger.
func (g grader) Grade(ctx context.Context, q domain.Question) domain.Outcome {
	start := time.Now()
	ctx = logger.WithFields(ctx, zap.String("grading_id", uuid.NewString()))

	logger.Debug(ctx, "grading response",
		zap.String("input_value", q.InputValue),
		zap.String("from_unit", q.FromUnit),
		zap.String("to_unit", q.ToUnit),
		zap.String("student_response", q.StudentResponse),
	)

	category, outcome := g.grade(ctx, q)

	logger.Debug(ctx, "graded response", zap.String("outcome", string(outcome)))
	if g.options.Recorder != nil {
		g.options.Recorder.RecordGrade(ctx, category, outcome, time.Since(start))
	}

	return outcome
}

func (g grader) grade(ctx context.Context, q domain.Question) (domain.Category, domain.Outcome) {
	category, err := ResolveCategory(g.table.Registry(), q.FromUnit, q.ToUnit, q.InputValue)
	if err != nil {
		logger.Debug(ctx, "invalid question", zap.Error(err))

		return "", domain.OutcomeInvalid
	}

	response, err := ParseNumber(q.StudentResponse)
	if err != nil {
		logger.Debug(ctx, "response is not a valid numeric string", zap.Error(err))

		return category, domain.OutcomeIncorrect
	}

	expected, err := g.expected(category, q.InputValue, q.FromUnit, q.ToUnit)
	if err != nil {
		logger.Debug(ctx, "could not compute expected answer", zap.Error(err))

		return category, domain.OutcomeInvalid
	}

	if expected == conversion.Round(response, 1) {
		return category, domain.OutcomeCorrect
	}

	return category, domain.OutcomeIncorrect
}

// Answer returns the expected answer for a question, or the validation error
// that makes the question invalid.
func (g grader) Answer(_ context.Context, inputValue, fromUnit, toUnit string) (float64, error) {
	category, err := ResolveCategory(g.table.Registry(), fromUnit, toUnit, inputValue)
	if err != nil {
		return 0, err
	}

	return g.expected(category, inputValue, fromUnit, toUnit)
}

func (g grader) expected(category domain.Category, inputValue, fromUnit, toUnit string) (float64, error) {
	value, err := ParseNumber(inputValue)
	if err != nil {
		return 0, err
	}

	if fromUnit == toUnit {
		return conversion.Round(value, 1), nil
	}

	return conversion.Convert(value, domain.Unit(fromUnit), domain.Unit(toUnit), category, g.table)
}

// New creates a Grader backed by the given conversion table and configured
// with the given options. A nil table selects conversion.Default.
func New(table *conversion.Table, options Options) Grader {
	if table == nil {
		table = conversion.Default()
	}

	return &grader{
		options: options,
		table:   table,
	}
}

// GradeResponse grades a response against the default unit registry and
// conversion table. It returns the outcome as one of "correct", "incorrect"
// or "invalid".
func GradeResponse(inputValue, fromUnit, toUnit, studentResponse string) domain.Outcome {
	return defaultGrader.Grade(context.Background(), domain.Question{
		InputValue:      inputValue,
		FromUnit:        fromUnit,
		ToUnit:          toUnit,
		StudentResponse: studentResponse,
	})
}

var defaultGrader = New(nil, Options{}) //nolint: gochecknoglobals
