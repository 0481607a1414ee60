package histcli

import (
	"encoding/json"
)

// Response is the standard JSON envelope for --json output.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func (a *app) outputJSON(resp Response) {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func (a *app) outputSuccess(data interface{}, warnings []Warning, meta *Meta) {
	a.outputJSON(Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
		Meta:     meta,
	})
}

// fail reports err. In JSON mode it writes an error envelope to stdout and
// marks the error as reported; in text mode Execute prints it to stderr.
// Either way the command exits non-zero.
func (a *app) fail(code string, err error, suggestion string) error {
	if !a.jsonOutput {
		return err
	}
	a.outputJSON(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    err.Error(),
			Suggestion: suggestion,
		},
	})
	return &reportedError{err: err}
}
