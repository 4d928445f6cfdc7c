package dto

// UserInfo is the public subset of a user returned by login. The password
// hash never leaves the service layer.
type UserInfo struct {
	UserID       string `json:"user_id"`
	UserType     string `json:"user_type"`
	MobileNumber string `json:"mobile_number"`
}

type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}

type ForgotPasswordRequest struct {
	UserID string `json:"user_id"`
}

type ForgotPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyCodeRequest struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

type VerifyCodeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

type ResetPasswordRequest struct {
	UserID      string `json:"user_id"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
