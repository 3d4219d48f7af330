// Package sheet loads answer sheets and grades every question on them.
package sheet

import (
	"context"
	"io"
	"os"
	"unitgrader/internal/grader"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/logger"
	"unitgrader/pkg/serrors"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Sheet is a list of questions with learner responses.
type Sheet struct {
	Questions []domain.Question `yaml:"questions"`
}

// Summary counts the outcomes of a graded sheet.
type Summary struct {
	Total     int
	Correct   int
	Incorrect int
	Invalid   int
}

// Score is the fraction of correct answers, zero for an empty sheet.
func (s Summary) Score() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Correct) / float64(s.Total)
}

// Load reads and decodes the sheet stored at path.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "answer sheet %q not found", path)
		}

		return nil, errors.Wrapf(err, "could not open answer sheet %q", path)
	}
	defer f.Close() //nolint: errcheck

	s, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load answer sheet %q", path)
	}

	return s, nil
}

// Parse decodes a sheet from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed answer sheet")
	}

	return &s, nil
}

// Grade grades every question in order and returns the results with their
// summary. Expected answers are attached to every question that is not invalid.
func Grade(ctx context.Context, g grader.Grader, questions []domain.Question) ([]domain.Result, Summary) {
	results := make([]domain.Result, 0, len(questions))
	summary := Summary{Total: len(questions)}

	for i, q := range questions {
		res := domain.Result{Question: q, Outcome: g.Grade(ctx, q)}

		switch res.Outcome {
		case domain.OutcomeCorrect:
			summary.Correct++
		case domain.OutcomeIncorrect:
			summary.Incorrect++
		case domain.OutcomeInvalid:
			summary.Invalid++
		}

		if res.Outcome != domain.OutcomeInvalid {
			expected, err := g.Answer(ctx, q.InputValue, q.FromUnit, q.ToUnit)
			if err != nil {
				logger.Warn(ctx, "could not compute expected answer", zap.Int("question", i+1), zap.Error(err))
			} else {
				res.Expected, res.HasExpected = expected, true
			}
		}

		results = append(results, res)
	}

	return results, summary
}
