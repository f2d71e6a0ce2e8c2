// Package testutil provides helpers for running CLI commands in tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// CLIResult represents the result of running a CLI command.
type CLIResult struct {
	OK      bool
	Data    json.RawMessage
	Error   *CLIError
	Meta    *CLIMeta
	Stdout  string
	Stderr  string
	Err     error
	IsJSON  bool
	RawJSON string
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Suggestion string                 `json:"suggestion,omitempty"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// RunCommand executes cmd in-process with args and stdin, capturing output.
// When the output is a JSON envelope it is decoded into the result.
func RunCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) CLIResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	result := CLIResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
		OK:     err == nil,
	}

	var envelope struct {
		OK    bool            `json:"ok"`
		Data  json.RawMessage `json:"data"`
		Error *CLIError       `json:"error"`
		Meta  *CLIMeta        `json:"meta"`
	}
	if json.Unmarshal(stdout.Bytes(), &envelope) == nil && (envelope.OK || envelope.Error != nil) {
		result.IsJSON = true
		result.RawJSON = stdout.String()
		result.OK = envelope.OK && err == nil
		result.Data = envelope.Data
		result.Error = envelope.Error
		result.Meta = envelope.Meta
	}
	return result
}

// MustSucceed fails the test if the command failed.
func (r CLIResult) MustSucceed(t *testing.T) CLIResult {
	t.Helper()
	if !r.OK {
		t.Fatalf("expected success, got err=%v error=%+v\nstdout:\n%s\nstderr:\n%s", r.Err, r.Error, r.Stdout, r.Stderr)
	}
	return r
}

// MustFailWithCode fails the test unless the command failed with a JSON
// error carrying code.
func (r CLIResult) MustFailWithCode(t *testing.T, code string) CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected failure with %s, got success:\n%s", code, r.Stdout)
	}
	if r.Error == nil {
		t.Fatalf("expected JSON error %s, got err=%v stdout:\n%s", code, r.Err, r.Stdout)
	}
	if r.Error.Code != code {
		t.Fatalf("expected error code %s, got %s (%s)", code, r.Error.Code, r.Error.Message)
	}
	return r
}

// DecodeData unmarshals the envelope data into v.
func (r CLIResult) DecodeData(t *testing.T, v interface{}) {
	t.Helper()
	if !r.IsJSON {
		t.Fatalf("expected JSON output, got:\n%s", r.Stdout)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v\n%s", err, r.RawJSON)
	}
}

// Lines returns stdout split into lines without the trailing empty line.
func (r CLIResult) Lines() []string {
	out := strings.TrimRight(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
