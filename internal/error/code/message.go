package code

// Business code to human-readable message.
var codeMessageMap = map[int]string{
	// Common codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Request validation failed",
	ErrTokenInvalid:    "Invalid or expired authentication token",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Admin codes
	ErrAdminNotFound:      "Administrator not found",
	ErrAdminAlreadyExist:  "Admin already exists with this email",
	ErrInvalidCredentials: "Invalid credentials",

	// Lead codes
	ErrLeadNotFound:      "Lead not found",
	ErrLeadAlreadyExist:  "A lead with this email already exists",
	ErrInvalidLeadStatus: "Invalid lead status",

	// Project codes
	ErrProjectNotFound: "Project not found",

	// Client codes
	ErrClientNotFound: "Client not found",

	// Subscriber codes
	ErrSubscriberNotFound:     "Subscriber not found",
	ErrSubscriberAlreadyExist: "Email already subscribed",

	// Upload codes
	ErrUploadRejected: "Only image files up to 5MB are allowed",
	ErrNoFileUploaded: "No file uploaded",

	// Database codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Business code to HTTP status.
var codeStatusMap = map[int]int{
	// Common codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Admin codes
	ErrAdminNotFound:      StatusNotFound,
	ErrAdminAlreadyExist:  StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,

	// Lead codes
	ErrLeadNotFound:      StatusNotFound,
	ErrLeadAlreadyExist:  StatusBadRequest,
	ErrInvalidLeadStatus: StatusBadRequest,

	// Project codes
	ErrProjectNotFound: StatusNotFound,

	// Client codes
	ErrClientNotFound: StatusNotFound,

	// Subscriber codes
	ErrSubscriberNotFound:     StatusNotFound,
	ErrSubscriberAlreadyExist: StatusBadRequest,

	// Upload codes
	ErrUploadRejected: StatusBadRequest,
	ErrNoFileUploaded: StatusBadRequest,

	// Database codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message registered for a business code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status registered for a business code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
