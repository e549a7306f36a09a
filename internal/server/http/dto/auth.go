package dto

// CredentialsRequest describes the email/password payload of sign-up and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is returned on success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	MessageUserCreated = "User created successfully"
	MessageLoggedIn    = "Logged in successfully."

	ErrMessageUserExists      = "User already exists."
	ErrMessageUserNotFound    = "User could not be found."
	ErrMessageInvalidPassword = "Invalid password."
	ErrMessageInvalidBody     = "Invalid request body."
	ErrMessageBodyTooLarge    = "Request body too large."
	ErrMessageInternal        = "Internal server error."
)
