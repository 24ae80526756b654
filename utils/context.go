package utils

// RequestIDKey adalah key gin.Context untuk request id.
const RequestIDKey = "request_id"
