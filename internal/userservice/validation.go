package userservice

import (
	"regexp"

	"github.com/apiflux/blogapi/internal/common"
)

var (
	EmailRX    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	UsernameRX = regexp.MustCompile("^[a-zA-Z0-9]+$")
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 3, 50), "username", "must be between 3 and 50 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "must only contain letters and numbers")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

// bcrypt truncates past 72 bytes, hence the upper bound.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(v.CheckStringLength(password, 6, 72), "password", "must be between 6 and 72 characters long")
}

func validateFullName(v *common.Validator, fullName *string) {
	if fullName == nil {
		return
	}
	v.Check(len(*fullName) <= 100, "full_name", "must not be more than 100 characters long")
}
