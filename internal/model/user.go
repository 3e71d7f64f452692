package model

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "user"
)

// User is the identity returned by /auth/me.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
	CartID   string `json:"cart_id,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type MeResponse struct {
	User *User `json:"user"`
}

type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captchaToken,omitempty"`
}

type RegisterRequest struct {
	Name             string `json:"name"`
	Username         string `json:"username,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Password         string `json:"password"`
	ValidatePassword string `json:"validatePassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyResetTokenRequest struct {
	Token string `json:"token"`
}

type VerifyResetTokenResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type ResetPasswordRequest struct {
	Token               string `json:"token"`
	NewPassword         string `json:"newPassword"`
	NewPasswordValidate string `json:"newPasswordValidate"`
}

type EditUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type UsersPage struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int    `json:"total,omitempty"`
	Users []User `json:"users"`
}
