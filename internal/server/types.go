package server

// Response represents the standardized JSON response for a compute request.
type Response struct {
	// Op is the operation that was evaluated.
	Op string `json:"op"`
	// Args are the textual operands as received.
	Args []string `json:"args"`
	// Result is the computed value rendered in the requested base. It is
	// omitted if an error occurred.
	Result string `json:"result,omitempty"`
	// Base is the base the result is rendered in.
	Base int `json:"base"`
	// Digits is the digit count of the result.
	Digits int `json:"digits,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the evaluation failed.
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// ComputeParseError represents a parameter parsing error with HTTP status.
type ComputeParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e ComputeParseError) Error() string {
	return e.Message
}
