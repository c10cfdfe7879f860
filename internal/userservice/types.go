package userservice

import (
	"database/sql"
	"time"
)

type UserService struct {
	m      *DBModel
	tokens *TokenMaker
}

type DBModel struct {
	db *sql.DB
}

// User is the account record. The password never serializes; outward
// responses carry only the public projection below it.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Password struct {
	plain string
	hash  []byte
}
