package code

// HTTP status codes used by the response layer.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limit exceeded.
	StatusTooManyRequests = 429
)

// Common codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: missing, malformed or expired token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Admin codes (101xxx).
const (
	// ErrAdminNotFound - 404: administrator does not exist.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: an administrator with this email already exists.
	ErrAdminAlreadyExist
	// ErrInvalidCredentials - 401: login failed; deliberately undifferentiated.
	ErrInvalidCredentials
)

// Lead codes (102xxx).
const (
	// ErrLeadNotFound - 404: lead does not exist.
	ErrLeadNotFound int = iota + 102000
	// ErrLeadAlreadyExist - 400: a lead with this email already exists.
	ErrLeadAlreadyExist
	// ErrInvalidLeadStatus - 400: status outside the lead lifecycle enum.
	ErrInvalidLeadStatus
)

// Project codes (103xxx).
const (
	// ErrProjectNotFound - 404: project does not exist.
	ErrProjectNotFound int = iota + 103000
)

// Client codes (104xxx).
const (
	// ErrClientNotFound - 404: client does not exist.
	ErrClientNotFound int = iota + 104000
)

// Subscriber codes (105xxx).
const (
	// ErrSubscriberNotFound - 404: subscriber does not exist.
	ErrSubscriberNotFound int = iota + 105000
	// ErrSubscriberAlreadyExist - 400: email already subscribed.
	ErrSubscriberAlreadyExist
)

// Upload codes (106xxx).
const (
	// ErrUploadRejected - 400: wrong file type or size over limit.
	ErrUploadRejected int = iota + 106000
	// ErrNoFileUploaded - 400: no file present in the request.
	ErrNoFileUploaded
)

// Database codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
