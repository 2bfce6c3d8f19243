package admin

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
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPending            = errors.New("account pending approval from main admin")
	ErrRejected           = errors.New("account rejected by main admin")
	ErrMainAdmin          = errors.New("main admin account is protected")
	ErrForbidden          = errors.New("forbidden")
)

const (
	MainID       int64 = 1
	MainUsername       = "admin"
	MainPassword       = "sleep123"
)

// Registry is an immutable list of admin accounts. Mutators return a new
// Registry and leave the receiver untouched.
type Registry struct {
	accounts []models.AdminAccount
}

func IsMain(a models.AdminAccount) bool {
	return a.IsMain || a.Username == MainUsername
}

func MainAccount() (models.AdminAccount, error) {
	pw, err := hash.HashPassword(MainPassword)
	if err != nil {
		return models.AdminAccount{}, fmt.Errorf("hash main admin password: %w", err)
	}
	return models.AdminAccount{
		ID:           MainID,
		Username:     MainUsername,
		PasswordHash: pw,
		Role:         models.RoleSuper,
		Status:       models.AdminApproved,
		IsMain:       true,
	}, nil
}

func Seed() (Registry, error) {
	return New(nil)
}

// New builds a registry from stored accounts, putting the main account back
// in front when it is missing.
func New(accounts []models.AdminAccount) (Registry, error) {
	out := make([]models.AdminAccount, 0, len(accounts)+1)
	hasMain := false
	for _, a := range accounts {
		if IsMain(a) {
			hasMain = true
		}
		out = append(out, a)
	}
	if !hasMain {
		main, err := MainAccount()
		if err != nil {
			return Registry{}, err
		}
		out = append([]models.AdminAccount{main}, out...)
	}
	return Registry{accounts: out}, nil
}

func (r Registry) Accounts() []models.AdminAccount {
	return append([]models.AdminAccount(nil), r.accounts...)
}

func (r Registry) Pending() []models.AdminAccount {
	var out []models.AdminAccount
	for _, a := range r.accounts {
		if a.Status == models.AdminPending {
			out = append(out, a)
		}
	}
	return out
}

func (r Registry) index(id int64) int {
	for i, a := range r.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (r Registry) Get(id int64) (models.AdminAccount, error) {
	i := r.index(id)
	if i < 0 {
		return models.AdminAccount{}, fmt.Errorf("%w: admin %d", ErrNotFound, id)
	}
	return r.accounts[i], nil
}

// Register files a pending access request.
func (r Registry) Register(username, password, confirm string, now time.Time) (Registry, models.AdminAccount, error) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return r, models.AdminAccount{}, fmt.Errorf("%w: username is required", ErrValidation)
	case password == "":
		return r, models.AdminAccount{}, fmt.Errorf("%w: password is required", ErrValidation)
	case password != confirm:
		return r, models.AdminAccount{}, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	for _, a := range r.accounts {
		if a.Username == username {
			return r, models.AdminAccount{}, fmt.Errorf("%w: username already taken", ErrValidation)
		}
	}

	pw, err := hash.HashPassword(password)
	if err != nil {
		return r, models.AdminAccount{}, fmt.Errorf("hash password: %w", err)
	}

	id := now.UnixMilli()
	for r.index(id) >= 0 {
		id++
	}
	acc := models.AdminAccount{
		ID:           id,
		Username:     username,
		PasswordHash: pw,
		Role:         models.RoleAdmin,
		Status:       models.AdminPending,
	}
	out := append(r.Accounts(), acc)
	return Registry{accounts: out}, acc, nil
}

// Login reports bad credentials before looking at the account status. The main
// account is always treated as approved.
func (r Registry) Login(username, password string) (models.AdminAccount, error) {
	username = strings.TrimSpace(username)
	for _, a := range r.accounts {
		if a.Username != username || !hash.CheckPassword(a.PasswordHash, password) {
			continue
		}
		if IsMain(a) {
			return a, nil
		}
		switch a.Status {
		case models.AdminApproved:
			return a, nil
		case models.AdminPending:
			return models.AdminAccount{}, ErrPending
		case models.AdminRejected:
			return models.AdminAccount{}, ErrRejected
		default:
			return models.AdminAccount{}, fmt.Errorf("%w: unknown status %q", ErrInvalidCredentials, a.Status)
		}
	}
	return models.AdminAccount{}, ErrInvalidCredentials
}

// Authorize checks that callerID may manage other accounts.
func (r Registry) Authorize(callerID int64) (models.AdminAccount, error) {
	caller, err := r.Get(callerID)
	if err != nil {
		return models.AdminAccount{}, fmt.Errorf("%w: unknown caller", ErrForbidden)
	}
	if caller.Role != models.RoleSuper {
		return models.AdminAccount{}, fmt.Errorf("%w: super role required", ErrForbidden)
	}
	if !IsMain(caller) && caller.Status != models.AdminApproved {
		return models.AdminAccount{}, fmt.Errorf("%w: caller not approved", ErrForbidden)
	}
	return caller, nil
}

func (r Registry) setStatus(callerID, id int64, status models.AdminStatus) (Registry, models.AdminAccount, error) {
	i := r.index(id)
	if i < 0 {
		return r, models.AdminAccount{}, fmt.Errorf("%w: admin %d", ErrNotFound, id)
	}
	if IsMain(r.accounts[i]) && status != models.AdminApproved {
		return r, models.AdminAccount{}, ErrMainAdmin
	}
	if _, err := r.Authorize(callerID); err != nil {
		return r, models.AdminAccount{}, err
	}
	out := r.Accounts()
	out[i].Status = status
	return Registry{accounts: out}, out[i], nil
}

func (r Registry) Approve(callerID, id int64) (Registry, models.AdminAccount, error) {
	return r.setStatus(callerID, id, models.AdminApproved)
}

func (r Registry) Reject(callerID, id int64) (Registry, models.AdminAccount, error) {
	return r.setStatus(callerID, id, models.AdminRejected)
}

// Remove deletes an account. The main account is refused whoever asks.
func (r Registry) Remove(callerID, id int64) (Registry, models.AdminAccount, error) {
	i := r.index(id)
	if i < 0 {
		return r, models.AdminAccount{}, fmt.Errorf("%w: admin %d", ErrNotFound, id)
	}
	target := r.accounts[i]
	if IsMain(target) {
		return r, models.AdminAccount{}, ErrMainAdmin
	}
	if _, err := r.Authorize(callerID); err != nil {
		return r, models.AdminAccount{}, err
	}
	out := make([]models.AdminAccount, 0, len(r.accounts)-1)
	out = append(out, r.accounts[:i]...)
	out = append(out, r.accounts[i+1:]...)
	return Registry{accounts: out}, target, nil
}
