package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/generator"
	"github.com/jwalitptl/passcheck/pkg/strength"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func run(t *testing.T, cb Clipboard, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(strengthService.NewService(generator.New()), cb)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvaluateArgument(t *testing.T) {
	out, _, err := run(t, nil, "", "abcdefgh")
	require.NoError(t, err)

	assert.Contains(t, out, "Weak")
	assert.Contains(t, out, "[########------------]  40%")
	assert.Contains(t, out, "✓ At least 8 characters")
	assert.Contains(t, out, "✗ Contains an uppercase letter")
	assert.Contains(t, out, "Add an uppercase letter (A-Z)")
}

func TestEvaluateStdin(t *testing.T) {
	out, _, err := run(t, nil, "Abc12345!\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Very Strong")
	assert.Contains(t, out, "Great job! Your password meets all requirements.")
}

func TestEvaluateJSON(t *testing.T) {
	out, _, err := run(t, nil, "", "--json", "Abcdefgh")
	require.NoError(t, err)

	var res strength.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, "Medium", res.Tier.Label)
}

func TestGenerateAndCopy(t *testing.T) {
	cb := &fakeClipboard{}
	out, stderr, err := run(t, cb, "", "generate", "--length", "20", "--copy")
	require.NoError(t, err)

	password := strings.SplitN(out, "\n", 2)[0]
	assert.Len(t, password, 20)
	assert.Equal(t, password, cb.text)
	assert.Contains(t, out, "Very Strong")
	assert.Contains(t, stderr, "Password copied!")
}

func TestGenerateInvalidLength(t *testing.T) {
	_, _, err := run(t, nil, "", "generate", "-l", "3")
	assert.ErrorIs(t, err, generator.ErrInvalidLength)
}

func TestCopyEmptyPassword(t *testing.T) {
	cb := &fakeClipboard{}
	_, _, err := run(t, cb, "\n", "--copy")
	assert.ErrorIs(t, err, errNothingToCopy)
	assert.EqualError(t, err, "No password to copy!")
	assert.Empty(t, cb.text)
}

func TestCopyFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard utility")}
	_, _, err := run(t, cb, "", "--copy", "Abc12345!")
	assert.ErrorIs(t, err, errCopyFailed)
	assert.EqualError(t, err, "Failed to copy password: no clipboard utility")
}

func TestRequirementsCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "requirements")
	require.NoError(t, err)
	assert.Contains(t, out, "1. length")
	assert.Contains(t, out, "score >= 5  Very Strong")
}
