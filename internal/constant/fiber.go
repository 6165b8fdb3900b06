package constant

const (
	ContextKeyRequestID  = "requestid"
	ContextKeyTranslator = "T"

	RequestIDHeader = "X-Request-ID"

	// SlimHeaderKey marks probe requests that shall be ignored by Sentry transaction tracing.
	SlimHeaderKey = "X-Slim"
)
