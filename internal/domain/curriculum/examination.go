package curriculum

import (
	"fmt"
	"math"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// Grade scale bounds. Lower is better: 1.0 is the best grade, 4.0 the last
// passing grade and 5.0 the worst.
const (
	BestScore    = 1.0
	PassingScore = 4.0
	WorstScore   = 5.0

	// FirstAttempt is the lowest attempt number.
	FirstAttempt = 1
)

// Rating is the qualitative band a score falls into.
type Rating string

const (
	RatingExcellent    Rating = "excellent"
	RatingGood         Rating = "good"
	RatingSatisfactory Rating = "satisfactory"
	RatingSufficient   Rating = "sufficient"
	RatingFailing      Rating = "failing"
)

// RateScore maps a score to its band. Boundary values belong to the better band.
func RateScore(score float64) Rating {
	switch {
	case score <= 1.5:
		return RatingExcellent
	case score <= 2.5:
		return RatingGood
	case score <= 3.5:
		return RatingSatisfactory
	case score <= PassingScore:
		return RatingSufficient
	default:
		return RatingFailing
	}
}

// Examination is one examination attempt of a module.
type Examination struct {
	score   float64
	date    time.Time
	attempt int
	kind    ExamKind
}

// NewExamination creates an examination record with all fields validated.
func NewExamination(score float64, date time.Time, attempt int, kind ExamKind) (*Examination, error) {
	const op = "NewExamination"

	if err := validateScore(op, score); err != nil {
		return nil, err
	}
	if err := validateAttempt(op, attempt); err != nil {
		return nil, err
	}
	if err := validateExamKind(op, kind); err != nil {
		return nil, err
	}

	return &Examination{
		score:   score,
		date:    timeutil.StartOfDay(date),
		attempt: attempt,
		kind:    kind,
	}, nil
}

func validateScore(op string, score float64) error {
	if math.IsNaN(score) || score < BestScore || score > WorstScore {
		return shared.Validation("examination", op,
			fmt.Sprintf("score must be between %.1f and %.1f, got %v", BestScore, WorstScore, score),
			shared.ErrValueOutOfRange)
	}
	return nil
}

func validateAttempt(op string, attempt int) error {
	if attempt < FirstAttempt {
		return shared.Validation("examination", op,
			fmt.Sprintf("attempt must be at least %d, got %d", FirstAttempt, attempt),
			shared.ErrValueOutOfRange)
	}
	return nil
}

func validateExamKind(op string, kind ExamKind) error {
	if !kind.IsValid() {
		return shared.Validation("examination", op,
			fmt.Sprintf("unknown examination kind %q", string(kind)), nil)
	}
	return nil
}

// Score returns the grade.
func (e *Examination) Score() float64 { return e.score }

// Date returns the examination date.
func (e *Examination) Date() time.Time { return e.date }

// Attempt returns the attempt number, starting at 1.
func (e *Examination) Attempt() int { return e.attempt }

// Kind returns the examination format.
func (e *Examination) Kind() ExamKind { return e.kind }

// SetScore replaces the score. An out-of-range value leaves the record unchanged.
func (e *Examination) SetScore(score float64) error {
	if err := validateScore("SetScore", score); err != nil {
		return err
	}
	e.score = score
	return nil
}

// SetDate replaces the examination date.
func (e *Examination) SetDate(date time.Time) {
	e.date = timeutil.StartOfDay(date)
}

// SetAttempt replaces the attempt number.
func (e *Examination) SetAttempt(attempt int) error {
	if err := validateAttempt("SetAttempt", attempt); err != nil {
		return err
	}
	e.attempt = attempt
	return nil
}

// SetKind replaces the examination format.
func (e *Examination) SetKind(kind ExamKind) error {
	if err := validateExamKind("SetKind", kind); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

// IsPassing returns true if the score is 4.0 or better.
func (e *Examination) IsPassing() bool {
	return e.score <= PassingScore
}

// Rating returns the qualitative band of the score.
func (e *Examination) Rating() Rating {
	return RateScore(e.score)
}

// String returns a string representation for logging.
func (e *Examination) String() string {
	return fmt.Sprintf("Examination{Kind: %s, Score: %.1f, Date: %s, Attempt: %d}",
		e.kind, e.score, timeutil.FormatDate(e.date), e.attempt)
}
