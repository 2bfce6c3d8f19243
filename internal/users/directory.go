package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/pkg/hash"
)

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Directory holds registered shoppers.
type Directory struct {
	users []models.User
}

func New(users []models.User) Directory {
	return Directory{users: append([]models.User(nil), users...)}
}

func (d Directory) Users() []models.User {
	return append([]models.User(nil), d.users...)
}

func (d Directory) Len() int { return len(d.users) }

func (d Directory) Register(name, email, password, confirm string, now time.Time) (Directory, models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return d, models.User{}, fmt.Errorf("%w: name is required", ErrValidation)
	case email == "":
		return d, models.User{}, fmt.Errorf("%w: email is required", ErrValidation)
	case password == "":
		return d, models.User{}, fmt.Errorf("%w: password is required", ErrValidation)
	case password != confirm:
		return d, models.User{}, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	for _, u := range d.users {
		if u.Email == email {
			return d, models.User{}, fmt.Errorf("%w: email already registered", ErrValidation)
		}
	}

	pw, err := hash.HashPassword(password)
	if err != nil {
		return d, models.User{}, fmt.Errorf("hash password: %w", err)
	}

	id := now.UnixMilli()
	for d.has(id) {
		id++
	}
	u := models.User{ID: id, Name: name, Email: email, PasswordHash: pw}
	return Directory{users: append(d.Users(), u)}, u, nil
}

func (d Directory) has(id int64) bool {
	for _, u := range d.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (d Directory) Login(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	for _, u := range d.users {
		if u.Email == email && hash.CheckPassword(u.PasswordHash, password) {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}
