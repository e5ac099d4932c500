package core

// error_messages.go maps technical errors to user-facing messages with a
// code that can be quoted to support.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Bad status: the sheet host answered with a non-success status
//	         Patterns: "unexpected status"
//	SRC002 - Too large: the export exceeded the configured body limit
//	         Patterns: "body too large"
//	SRC003 - Unreachable: DNS or TCP failure reaching the sheet host
//	         Patterns: "no such host", "connection refused", "connection reset"
//	SRC004 - Slow: the sheet host did not answer in time
//	         Patterns: "timeout"
//
// # Data Errors (DATA001-DATA099)
//
//	DATA001 - Not loaded: the dataset has not been loaded yet
//	          Patterns: "not loaded yet"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Cancelled: the request was cancelled
//	         Patterns: "context canceled"
//	REQ002 - Deadline: the request ran out of time
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests
//	          Patterns: "rate limit"
//
// # Default (ERR000)
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns come before general ones.

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Source
	{
		pattern: "unexpected status",
		msg: UserMessage{
			Message: "The resource list could not be retrieved",
			Action:  "Please try again later",
			Code:    "SRC001",
		},
	},
	{
		pattern: "body too large",
		msg: UserMessage{
			Message: "The resource list is larger than allowed",
			Action:  "Ask an administrator to raise SOURCE_MAX_BYTES",
			Code:    "SRC002",
		},
	},
	{
		pattern: "no such host",
		msg: UserMessage{
			Message: "Unable to reach the resource list",
			Action:  "Please try again in a few moments",
			Code:    "SRC003",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to reach the resource list",
			Action:  "Please try again in a few moments",
			Code:    "SRC003",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Connection to the resource list was interrupted",
			Action:  "Please try again",
			Code:    "SRC003",
		},
	},

	// Data
	{
		pattern: "not loaded yet",
		msg: UserMessage{
			Message: "Resources are still loading",
			Action:  "Please wait a moment and refresh",
			Code:    "DATA001",
		},
	},

	// Request
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again later",
			Code:    "REQ002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "The resource list took too long to respond",
			Action:  "Please try again later",
			Code:    "SRC004",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// GenericLoadFailure is the single message shown on the directory page for
// any failed load.
const GenericLoadFailure = "Failed to load resources. Please try again later."

// MapError converts a technical error to a user-friendly message. Unknown
// errors map to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// UserError pairs a technical error with its user message.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError wraps err with its mapped message. Returns nil for nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{Technical: err, User: MapError(err)}
}
