package services

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/crypt"
	"github.com/shashiranjanraj/shopeasy/pkg/http"
	"github.com/shashiranjanraj/shopeasy/pkg/validate"
)

// AuthService drives login, registration, and logout against the backend.
type AuthService struct {
	state *state.State
}

func NewAuthService(st *state.State) *AuthService {
	return &AuthService{state: st}
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login submits credentials and, on success, establishes the session.
// The password crosses the wire in the reversible placeholder encoding; the
// backend owns real hashing.
func (s *AuthService) Login(email, password string) (models.User, error) {
	resp, err := http.Post(config.APIBaseURL() + "/api/auth/login").
		Body(loginPayload{Email: email, Password: crypt.EncodePassword(password)}).
		Send()
	if err != nil {
		return models.User{}, fmt.Errorf("auth: login: %w", err)
	}

	if !resp.OK() {
		return models.User{}, &AuthenticationError{
			Status:  resp.StatusCode,
			Message: resp.Message("Login failed"),
		}
	}

	var data sessionPayload
	if err := resp.JSON(&data); err != nil {
		return models.User{}, fmt.Errorf("auth: login: %w", err)
	}

	if err := s.state.Session.Establish(data.Token, data.User); err != nil {
		return models.User{}, fmt.Errorf("auth: persist session: %w", err)
	}
	return data.User, nil
}

// Register creates an account. The password strength policy runs locally
// before any network call; a weak password never leaves the process.
// A successful registration does NOT establish a session — login is a
// separate step.
func (s *AuthService) Register(input RegisterInput) (models.User, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return models.User{}, &ValidationError{Message: validate.First(errs)}
	}
	if !IsPasswordStrong(input.Password) {
		return models.User{}, &ValidationError{Message: weakPasswordMessage}
	}

	payload := struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		CreatedAt string `json:"createdAt"`
	}{
		Name:      input.Name,
		Email:     input.Email,
		Password:  crypt.EncodePassword(input.Password),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := http.Post(config.APIBaseURL() + "/api/auth/register").
		Body(payload).
		Send()
	if err != nil {
		return models.User{}, fmt.Errorf("auth: register: %w", err)
	}

	if !resp.OK() {
		return models.User{}, &AuthenticationError{
			Status:  resp.StatusCode,
			Message: resp.Message("Registration failed"),
		}
	}

	var user models.User
	if err := resp.JSON(&user); err != nil {
		return models.User{}, fmt.Errorf("auth: register: %w", err)
	}
	return user, nil
}

// Logout clears the persisted session. Logging out twice is harmless.
func (s *AuthService) Logout() {
	s.state.Session.Clear()
}
