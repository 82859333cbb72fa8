// Package lamerr defines the pipeline's error taxonomy as structured, coded
// errors, in a PAR001/MOD001-style code namespacing, organized here by
// compiler phase:
//
//	ANN### - anonymization (structural input errors)
//	ELM### - lambda elimination (pipeline contract violations)
//	LNK### - primitive attachment / linking
//	RT###  - tree reduction (runtime primitive errors)
package lamerr

import "fmt"

// Error is a coded error carrying enough payload to diagnose: the phase
// code, a human message, and the offending name/index where applicable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Phase codes.
const (
	CodeTopLevelNameCollision = "ANN001"
	CodeParamNameCollision    = "ANN002"
	CodeUndefinedIdent        = "ANN003"

	CodeUnexpectedLambda = "ELM001"

	CodeUnnamedPrimop = "LNK001"
	CodeUnknownPrimop = "LNK002"

	CodeUnexpectedPrimApp = "RT001"
	CodePrimopFailure     = "RT002"
)

// TopLevelNameCollision reports a duplicate top-level definition name.
func TopLevelNameCollision(name string) error {
	return &Error{Code: CodeTopLevelNameCollision, Message: fmt.Sprintf("top-level name collision: %q is defined more than once", name)}
}

// ParamNameCollision reports two parameters of the same def sharing a name.
func ParamNameCollision(defName, param string) error {
	return &Error{Code: CodeParamNameCollision, Message: fmt.Sprintf("parameter name collision in %q: %q is bound more than once", defName, param)}
}

// UndefinedIdent reports a reference to a name with no binding in scope.
func UndefinedIdent(name string) error {
	return &Error{Code: CodeUndefinedIdent, Message: fmt.Sprintf("undefined identifier: %q", name)}
}

// UnexpectedLambda reports a lambda found outside the allowed top-level
// prefix of a definition body after lifting.
func UnexpectedLambda(defName string) error {
	return &Error{Code: CodeUnexpectedLambda, Message: fmt.Sprintf("unexpected lambda in %q: lambda lifting should have left only a top-level prefix of lambdas", defName)}
}

// UnnamedPrimop reports a body-less def whose name is Unnamed, which can
// never be matched against a host callback.
func UnnamedPrimop(defIndex int) error {
	return &Error{Code: CodeUnnamedPrimop, Message: fmt.Sprintf("definition #%d is a primitive declaration with no user-given name", defIndex)}
}

// UnknownPrimop reports a body-less def whose name has no matching host
// callback.
func UnknownPrimop(name string) error {
	return &Error{Code: CodeUnknownPrimop, Message: fmt.Sprintf("no host callback registered for primitive %q", name)}
}

// UnexpectedPrimApp reports a strict primitive argument that failed to
// reduce to a bare integer (a Node with a non-empty stack, or a
// supercombinator head).
func UnexpectedPrimApp(primName, arg string) error {
	return &Error{Code: CodeUnexpectedPrimApp, Message: fmt.Sprintf("primitive %q received a non-integer argument: %s", primName, arg)}
}

// PrimopFailure reports a primitive callback explicitly declining to
// produce a result.
func PrimopFailure(defName, arg string) error {
	return &Error{Code: CodePrimopFailure, Message: fmt.Sprintf("primitive %q failed on argument(s) %s", defName, arg)}
}
