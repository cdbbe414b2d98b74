// Package tutor implements the solve pipeline behind the practice API:
// normalize the given quantities, solve Newton's second law for the
// target, and when a student answer is present, grade it, classify the
// mistake and select a hint.
package tutor

import (
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// SolveRequest is the decoded body of a solve call: exactly two of the
// three quantities under given, the name of the third as target, and an
// optional student answer to grade.
type SolveRequest struct {
	Given         map[string]units.Quantity `json:"given"`
	Target        string                    `json:"target"`
	StudentAnswer *units.Quantity           `json:"studentAnswer,omitempty"`
}

// SolveResponse mirrors the wire contract. CorrectValue is in the
// target's canonical SI unit. IsCorrect, ErrorType and Hint serialize
// as JSON null when no student answer was supplied; ErrorType and Hint
// are also null for a correct answer.
type SolveResponse struct {
	CorrectValue float64              `json:"correctValue"`
	Unit         string               `json:"unit"`
	IsCorrect    *bool                `json:"isCorrect"`
	ErrorType    *diagnosis.ErrorKind `json:"errorType"`
	Hint         *string              `json:"hint"`
}
