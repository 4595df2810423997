package domain

// Recognized user roles. Role is free-form on the wire; these are the
// values the dashboard gates sections on.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleSpend = "spend"
)

// User is the authenticated account. It is never persisted client-side
// beyond the opaque bearer token.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginInput carries login credentials. Remember opts in to persisting
// the login identifier between sessions.
type LoginInput struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
