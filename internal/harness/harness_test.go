package harness

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bubbler-4/lamukoi/internal/examples"
	"github.com/Bubbler-4/lamukoi/internal/manifest"
)

func TestRunEchoCopiesFiniteInputToOutput(t *testing.T) {
	prog, ok := examples.Build("echo")
	require.True(t, ok)
	ex := manifest.Example{Name: "echo", Entry: "echo", Input: "hello", ExpectOutput: "hello"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Equal(t, "hello", string(res.Output))
	assert.True(t, res.Passed, res.FailureReason)
}

func TestRunChurchFourReducesToExpectedNormalForm(t *testing.T) {
	prog, ok := examples.Build("church-four")
	require.True(t, ok)
	ex := manifest.Example{Name: "church-four", Entry: "main", ExpectNormalForm: "4"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.True(t, res.Passed, res.FailureReason)
	assert.Equal(t, "4", res.NormalForm)
}

func TestRunBoolSelect(t *testing.T) {
	prog, ok := examples.Build("bool-select")
	require.True(t, ok)
	ex := manifest.Example{Name: "bool-select", Entry: "pick", ExpectNormalForm: "1"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.True(t, res.Passed, res.FailureReason)
}

func TestRunFailsExpectationReportsMismatch(t *testing.T) {
	prog, ok := examples.Build("echo")
	require.True(t, ok)
	ex := manifest.Example{Name: "echo", Entry: "echo", Input: "hello", ExpectOutput: "goodbye"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.NotEmpty(t, res.FailureReason)
}

func TestRunEnforcesMaxOutputBytes(t *testing.T) {
	prog, ok := examples.Build("echo")
	require.True(t, ok)
	ex := manifest.Example{Name: "echo", Entry: "echo", Input: "hello", MaxOutputBytes: 3}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Contains(t, res.FailureReason, "max_output_bytes")
}

// TestRunInfiniteBitstreamEchoScenario: an input sink that yields 0x30
// forever must produce 0x30 on every output byte seen before the caller
// gives up. A single byte value repeated enough times to dwarf what a
// short-timeout reduction can consume stands in for an unbounded stream.
func TestRunInfiniteBitstreamEchoScenario(t *testing.T) {
	prog, ok := examples.Build("echo")
	require.True(t, ok)
	ex := manifest.Example{Name: "echo", Entry: "echo", Input: strings.Repeat("0", 1<<20)}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	res, err := Run(ctx, prog, ex)
	require.NoError(t, err)
	for i, b := range res.Output {
		require.Equalf(t, byte('0'), b, "byte %d of output diverged from the repeating input", i)
	}
}

func TestRunFailsOnUnknownEntryPoint(t *testing.T) {
	prog, ok := examples.Build("echo")
	require.True(t, ok)
	ex := manifest.Example{Name: "echo", Entry: "does-not-exist"}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Run(ctx, prog, ex)
	require.Error(t, err)
}
