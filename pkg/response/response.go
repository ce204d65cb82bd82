package response

// Envelope is the standard success/failure body: a human-readable message
// plus the payload when there is one. Failure envelopes carry only the
// message, so Data is omitted when empty.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WithData wraps a payload in the standard envelope.
func WithData(message string, data interface{}) Envelope {
	return Envelope{Message: message, Data: data}
}

// Message builds a message-only envelope.
func Message(message string) Envelope {
	return Envelope{Message: message}
}

// UpdateFailure is the failure body of the update endpoint. It differs from
// the other endpoints' failure envelope on purpose; existing clients read the
// success and statusCode fields, so the shape must not be unified with Envelope.
type UpdateFailure struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// UpdateError builds the update endpoint's failure body.
func UpdateError(statusCode int, message string) UpdateFailure {
	return UpdateFailure{Success: false, Message: message, StatusCode: statusCode}
}
