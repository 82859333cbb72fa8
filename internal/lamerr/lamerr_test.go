package lamerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsCarryTheirPhaseCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"TopLevelNameCollision", TopLevelNameCollision("f"), CodeTopLevelNameCollision},
		{"ParamNameCollision", ParamNameCollision("f", "x"), CodeParamNameCollision},
		{"UndefinedIdent", UndefinedIdent("y"), CodeUndefinedIdent},
		{"UnexpectedLambda", UnexpectedLambda("f"), CodeUnexpectedLambda},
		{"UnnamedPrimop", UnnamedPrimop(3), CodeUnnamedPrimop},
		{"UnknownPrimop", UnknownPrimop("ADD"), CodeUnknownPrimop},
		{"UnexpectedPrimApp", UnexpectedPrimApp("ADD", "f (..)"), CodeUnexpectedPrimApp},
		{"PrimopFailure", PrimopFailure("DIV", "[1 0]"), CodePrimopFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Contains(t, c.err.Error(), c.code)
			lamErr, ok := c.err.(*Error)
			assert.True(t, ok)
			assert.Equal(t, c.code, lamErr.Code)
		})
	}
}

func TestErrorMessageIncludesOffendingName(t *testing.T) {
	err := UndefinedIdent("mystery")
	assert.Contains(t, err.Error(), "mystery")
}
