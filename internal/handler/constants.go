package handler

// Response values
const (
	StatusOK        = "ok"
	ContentTypeJSON = "application/json"
)

// HTTP header names
const (
	HeaderContentType = "Content-Type"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode response"
)
