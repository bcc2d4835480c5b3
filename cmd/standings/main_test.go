package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
  "teams": [
    {"id": "t1", "name": "Muskiz", "division": "Elite"},
    {"id": "t2", "name": "Barakaldo", "division": "Elite"},
    {"id": "t3", "name": "Getxo", "division": "Amateur"}
  ],
  "matches": [
    {"id": "m1", "team_a_id": "t1", "team_b_id": "t2", "team_a": "Muskiz", "team_b": "Barakaldo",
     "score_a": 12, "score_b": 18, "status": "FINISHED", "division": "Elite"},
    {"id": "m2", "team_a_id": "t2", "team_b_id": "t1", "team_a": "Barakaldo", "team_b": "Muskiz",
     "score_a": null, "score_b": null, "status": "SCHEDULED", "division": "Elite"}
  ]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTableSingleDivision(t *testing.T) {
	out, err := runCmd(t, "table", "--file", writeSnapshot(t), "--division", "Elite")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, out)
	assert.Equal(t, "Elite", lines[0])
	assert.Contains(t, lines[2], "Barakaldo")
	assert.Contains(t, lines[2], "+6")
	assert.Contains(t, lines[3], "Muskiz")
	assert.Contains(t, lines[3], "-6")
	assert.NotContains(t, out, "Getxo")
}

func TestTableAllDivisions(t *testing.T) {
	out, err := runCmd(t, "table", "-f", writeSnapshot(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Elite")
	assert.Contains(t, out, "Amateur")
	assert.Contains(t, out, "Juvenil")
	assert.Contains(t, out, "Getxo")
	assert.Contains(t, out, "counted: 1, incomplete: 0, pending: 1")
}

func TestTableErrors(t *testing.T) {
	_, err := runCmd(t, "table")
	assert.Error(t, err, "--file is required")

	_, err = runCmd(t, "table", "--file", writeSnapshot(t), "--division", "Senior")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown division")

	_, err = runCmd(t, "table", "--file", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open snapshot")
}
