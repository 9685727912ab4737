package logging

const (
	LogFieldPayloadTarget  = "payload-target"
	LogFieldPayloadOutcome = "payload-outcome"
	LogFieldErrorCode      = "error-code"
	LogFieldLogger         = "logger"
)
