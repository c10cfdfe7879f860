package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/apiflux/blogapi/internal/common"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func NewUserService(db *sql.DB, tokens *TokenMaker) *UserService {
	return &UserService{
		m:      newUserModel(db),
		tokens: tokens,
	}
}

// RegisterUser creates an account and returns it with a signed access
// token. The existence pre-check and the insert are not one atomic
// step: two concurrent registrations can both pass the pre-check, so a
// unique violation from the insert maps to the same ErrDuplicateUser.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password string, fullName *string) (*User, string, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, password)
	validateFullName(v, fullName)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	taken, err := s.m.exists(ctx, email, username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrDuplicateUser
	}

	u := User{
		Username: username,
		Email:    email,
		FullName: fullName,
	}

	if err := u.Password.set(password); err != nil {
		return nil, "", err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.New(Identity{UserID: u.ID, Username: u.Username, Email: u.Email})
	if err != nil {
		return nil, "", err
	}

	return &u, token, nil
}

// LoginUser verifies the credentials and returns the account with a
// fresh access token. An unknown email and a wrong password produce the
// identical ErrInvalidCredentials so the response never reveals which
// check failed.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*User, string, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, "", ErrInvalidCredentials
		default:
			return nil, "", err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.New(Identity{UserID: user.ID, Username: user.Username, Email: user.Email})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUserByID returns the public projection for an account.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	v.Check(id > 0, "id", "must be greater than zero")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}
