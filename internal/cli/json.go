package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
	Meta  *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func outputJSON(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(cmd *cobra.Command, data interface{}, meta *Meta) {
	outputJSON(cmd.OutOrStdout(), Response{
		OK:   true,
		Data: data,
		Meta: meta,
	})
}

func outputError(cmd *cobra.Command, code, message string, details interface{}, suggestion string) {
	outputJSON(cmd.OutOrStdout(), Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// handleError handles an error appropriately based on output mode.
// In JSON mode, outputs a JSON error. In text mode, returns the error for
// Execute to print.
func (o *rootOptions) handleError(cmd *cobra.Command, code string, err error, suggestion string) error {
	return o.handleErrorWithDetails(cmd, code, err.Error(), suggestion, nil)
}

// handleErrorMsg handles an error message appropriately based on output mode.
func (o *rootOptions) handleErrorMsg(cmd *cobra.Command, code, message, suggestion string) error {
	return o.handleErrorWithDetails(cmd, code, message, suggestion, nil)
}

// handleErrorWithDetails handles an error with structured details.
func (o *rootOptions) handleErrorWithDetails(cmd *cobra.Command, code, message, suggestion string, details interface{}) error {
	if o.jsonOutput {
		outputError(cmd, code, message, details, suggestion)
		return errReported
	}
	if suggestion != "" {
		return fmt.Errorf("%s\n\n%s", message, suggestion)
	}
	return fmt.Errorf("%s", message)
}
