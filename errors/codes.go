package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int32

const (
	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007
	ErrorCode_RATE_LIMITED      ErrorCode = 1008

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 2000
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = 2003
	ErrorCode_AUTH_USER_ALREADY_EXISTS   ErrorCode = 2004
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 2005

	// Blog pipeline
	ErrorCode_BLOG_INVALID_VIDEO_URL ErrorCode = 3000
	ErrorCode_BLOG_NO_TRANSCRIPT     ErrorCode = 3001
	ErrorCode_BLOG_TRANSCRIPTION     ErrorCode = 3002
	ErrorCode_BLOG_GENERATION_FAILED ErrorCode = 3003
	ErrorCode_BLOG_NOT_FOUND         ErrorCode = 3004
	ErrorCode_BLOG_EXPORT_FAILED     ErrorCode = 3005
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 3006
	ErrorCode_STORAGE_NOT_CONFIGURED ErrorCode = 3007
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                  "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_RATE_LIMITED:               "RATE_LIMITED",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:   "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN: "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_BLOG_INVALID_VIDEO_URL:     "BLOG_INVALID_VIDEO_URL",
	ErrorCode_BLOG_NO_TRANSCRIPT:         "BLOG_NO_TRANSCRIPT",
	ErrorCode_BLOG_TRANSCRIPTION:         "BLOG_TRANSCRIPTION",
	ErrorCode_BLOG_GENERATION_FAILED:     "BLOG_GENERATION_FAILED",
	ErrorCode_BLOG_NOT_FOUND:             "BLOG_NOT_FOUND",
	ErrorCode_BLOG_EXPORT_FAILED:         "BLOG_EXPORT_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_STORAGE_NOT_CONFIGURED:     "STORAGE_NOT_CONFIGURED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
