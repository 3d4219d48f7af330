package domain

// Outcome is the verdict returned for a question and response pair.
type Outcome string

const (
	// OutcomeCorrect means the response matches the expected answer at one decimal place.
	OutcomeCorrect Outcome = "correct"
	// OutcomeIncorrect means the question was well-formed but the response does not match.
	OutcomeIncorrect Outcome = "incorrect"
	// OutcomeInvalid means the question itself could not be graded (bad input value or units).
	OutcomeInvalid Outcome = "invalid"
)

// Question holds the raw inputs of one grading call. No field is assumed to be
// validated.
type Question struct {
	// InputValue is the numeric value given in the question.
	InputValue string `yaml:"input_value" json:"inputValue"`
	// FromUnit is the unit the input value is expressed in.
	FromUnit string `yaml:"from_unit" json:"fromUnit"`
	// ToUnit is the unit the learner must convert to.
	ToUnit string `yaml:"to_unit" json:"toUnit"`
	// StudentResponse is the learner's answer.
	StudentResponse string `yaml:"student_response" json:"studentResponse"`
}

// Result is a graded question.
type Result struct {
	Question Question
	Outcome  Outcome
	// Expected is the expected answer rounded to one decimal place. It is only
	// meaningful when HasExpected is true, i.e. when the question was valid.
	Expected    float64
	HasExpected bool
}
