package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pager/internal/cli"
	"github.com/maxviazov/pager/internal/model"
	"github.com/maxviazov/pager/internal/pagination"
	"github.com/maxviazov/pager/pkg/response"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep logs quiet and off stdout
	t.Setenv("APP_LOGGER_LEVEL", "error")

	var out bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestView(t *testing.T) {
	out, err := run(t, "view", "--total", "100", "--page", "4", "--per-page", "30")
	require.NoError(t, err)

	var meta pagination.Meta
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, 90, meta.Skip)
	assert.False(t, meta.HasNext)
	assert.Equal(t, []int{4}, meta.Pages)
}

func TestNextAndPrev(t *testing.T) {
	out, err := run(t, "next", "--total", "100", "--page", "5", "--per-page", "15")
	require.NoError(t, err)

	var tr model.Transition
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, 6, tr.To)
	assert.True(t, tr.Changed)
	assert.Equal(t, 75, tr.Page.Offset)

	out, err = run(t, "prev", "--total", "100", "--page", "1")
	require.NoError(t, err)
	tr = model.Transition{}
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, 1, tr.To)
	assert.False(t, tr.Changed)
}

func TestGoTo(t *testing.T) {
	out, err := run(t, "goto", "1", "--total", "75", "--page", "3", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "to: 1")
	assert.Contains(t, out, "changed: true")

}

func TestGoTo_NonIntegerTarget(t *testing.T) {
	out, err := run(t, "goto", "abc", "--total", "50")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, response.ExitInvalidInput, exitErr.Code)

	var payload response.ErrorPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "invalid_input", payload.Error)
	require.Len(t, payload.FieldErrors, 1)
	assert.Equal(t, "target_page", payload.FieldErrors[0].Field)
}

func TestInvalidInputExitCode(t *testing.T) {
	out, err := run(t, "view", "--page", "0")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, response.ExitInvalidInput, exitErr.Code)
	assert.Contains(t, out, "current_page")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "view", "-o", "xml")
	assert.ErrorIs(t, err, response.ErrUnknownFormat)
}
