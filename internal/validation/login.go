package validation

import "roomdesk/internal/domain"

// Login validates login credentials.
func Login(in domain.LoginInput) error {
	v := &errs{}
	v.requiredString("userId", "user ID", in.UserID)
	v.requiredString("password", "password", in.Password)
	return v.result()
}
