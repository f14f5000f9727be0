package models

import "time"

// User is an account that owns notes, folders and study sessions.
type User struct {
	// UserID is the internal identifier; it is the JWT subject.
	UserID int64 `json:"user_id,omitempty"`

	Login string `json:"login" validate:"required,min=3,max=64"`
	Name  string `json:"name,omitempty"`

	// Password is accepted on register/login only and never stored.
	Password string `json:"password,omitempty" validate:"required,min=6,max=72"`

	// PasswordHash is the bcrypt hash persisted in the users table.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// LocalSession is the persisted client login, restored on startup.
type LocalSession struct {
	UserID    int64
	Login     string
	Token     string
	CreatedAt time.Time
}

// Public strips the credentials, leaving what may be sent to a client.
func (u User) Public() User {
	return User{UserID: u.UserID, Login: u.Login, Name: u.Name, CreatedAt: u.CreatedAt}
}
