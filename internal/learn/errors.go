package learn

import "errors"

var (
	ErrInvalidRequest  = errors.New("task and text are required")
	ErrUnsupportedTask = errors.New("unsupported task")
	ErrUpstream        = errors.New("model request failed")
	ErrEmptyResponse   = errors.New("empty response from model")
)

// Messages returned to callers. Upstream details stay in the logs.
const (
	msgInvalidBody     = "Invalid request body."
	msgMissingFields   = "Task and text are required."
	msgInvalidTask     = "Invalid task specified."
	msgUpstreamFailure = "Failed to get response from AI model."
)
