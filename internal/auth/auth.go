package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"replenishhq/internal/models"
	"replenishhq/internal/storage"
)

// Storage keys for the session and the self-registered accounts.
const (
	keySessionUser  = "replenishhq_user"
	keySessionToken = "replenishhq_token"
	keyAccounts     = "replenishhq_accounts"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type account struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
	Role         string `json:"role"`
}

// Service authenticates users against the built-in demo accounts plus
// any accounts created through signup. There is no external identity
// provider; everything lives in the store.
type Service struct {
	store  *storage.Store
	secret []byte
	log    *slog.Logger

	mu       sync.Mutex
	builtins []account
}

func NewService(store *storage.Store, secret string, log *slog.Logger) *Service {
	return &Service{
		store:  store,
		secret: []byte(secret),
		log:    log,
		builtins: []account{
			{Name: "John Doe", Email: "admin@replenishhq.com", PasswordHash: mustHash("admin123"), Role: models.RoleAdmin},
			{Name: "Jane Smith", Email: "manager@replenishhq.com", PasswordHash: mustHash("manager123"), Role: models.RoleManager},
		},
	}
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// Login checks the email and password and, on success, issues a token
// and persists the session. Email matching is case-insensitive.
func (s *Service) Login(email, password string) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.findAccount(email)
	if !ok {
		return models.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	user := models.User{Name: acct.Name, Role: acct.Role}
	token, err := s.GenerateToken(user.Name, user.Role)
	if err != nil {
		return models.User{}, "", err
	}

	s.saveSession(user, token)
	s.log.Info("user logged in", "email", strings.ToLower(email), "role", user.Role)
	return user, token, nil
}

// Signup creates a Staff account and logs it in immediately.
func (s *Service) Signup(name, email, password string) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if _, exists := s.findAccount(email); exists {
		return models.User{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}
	acct := account{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleStaff,
	}
	registered := s.registeredAccounts()
	registered = append(registered, acct)
	if raw, err := json.Marshal(registered); err == nil {
		s.store.Set(keyAccounts, string(raw))
	}

	user := models.User{Name: acct.Name, Role: acct.Role}
	token, err := s.GenerateToken(user.Name, user.Role)
	if err != nil {
		return models.User{}, "", err
	}

	s.saveSession(user, token)
	s.log.Info("account created", "email", email)
	return user, token, nil
}

// Logout drops the persisted session. The token itself stays valid
// until expiry; the server only forgets it.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Remove(keySessionUser)
	s.store.Remove(keySessionToken)
}

// UpdateName changes the session user's display name. Only the stored
// session is touched; the builtin accounts keep their names.
func (s *Service) UpdateName(name string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, errors.New("name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.Get(keySessionUser)
	if !ok {
		return models.User{}, errors.New("no active session")
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, err
	}
	user.Name = name
	if out, err := json.Marshal(user); err == nil {
		s.store.Set(keySessionUser, string(out))
	}
	return user, nil
}

// CurrentUser returns the persisted session user, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.Get(keySessionUser)
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

func (s *Service) findAccount(email string) (account, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, acct := range s.builtins {
		if strings.ToLower(acct.Email) == email {
			return acct, true
		}
	}
	for _, acct := range s.registeredAccounts() {
		if strings.ToLower(acct.Email) == email {
			return acct, true
		}
	}
	return account{}, false
}

func (s *Service) registeredAccounts() []account {
	raw, ok := s.store.Get(keyAccounts)
	if !ok {
		return nil
	}
	var accounts []account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil
	}
	return accounts
}

func (s *Service) saveSession(user models.User, token string) {
	if raw, err := json.Marshal(user); err == nil {
		s.store.Set(keySessionUser, string(raw))
	}
	s.store.Set(keySessionToken, token)
}
