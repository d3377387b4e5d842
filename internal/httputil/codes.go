package httputil

// Machine-readable error codes returned alongside error messages.
// Clients should branch on these rather than on message text.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeNameRequired       = "name_required"
	CodeEmailRequired      = "email_required"
	CodePasswordRequired   = "password_required"
	CodeInvalidEmail       = "invalid_email"
	CodeEmailAlreadyExists = "email_already_exists"
	CodeInvalidCredentials = "invalid_credentials"

	CodeMissingAuth        = "missing_authentication"
	CodeInvalidAuthHeader  = "invalid_auth_header"
	CodeInvalidToken       = "invalid_token"
	CodeTokenExpired       = "token_expired"
	CodeInvalidTokenUserID = "invalid_token_user_id"

	CodeTitleRequired = "title_required"
	CodeForbidden     = "forbidden"
	CodeNotFound      = "not_found"
	CodeInvalidID     = "invalid_id"

	CodeTooManyRequests = "too_many_requests"
	CodeInternalError   = "internal_error"
)
