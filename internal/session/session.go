// Package session models the dashboard session: who is signed in and which
// view the dashboard shows. A Session is an immutable value; every transition
// returns a new Session.
package session

import (
	"errors"
	"fmt"
	"strings"
)

// ViewMode selects between the prompt-driven and the traditional dashboard.
type ViewMode string

const (
	ViewPrompt      ViewMode = "prompt"
	ViewTraditional ViewMode = "traditional"
)

// ErrMissingCredentials is returned when login or registration data is blank.
var ErrMissingCredentials = errors.New("email and password are required")

// User is the signed-in user.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the per-client dashboard state.
type Session struct {
	User            *User    `json:"user"`
	IsAuthenticated bool     `json:"isAuthenticated"`
	ViewMode        ViewMode `json:"viewMode"`
}

// New returns a signed-out session in prompt mode.
func New() Session {
	return Session{ViewMode: ViewPrompt}
}

// Login signs in with any non-empty credentials. Credentials are not verified.
// The display name is the local part of the e-mail address.
func (s Session) Login(email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return s, ErrMissingCredentials
	}
	name, _, _ := strings.Cut(email, "@")
	s.User = &User{Email: email, Name: name}
	s.IsAuthenticated = true
	return s, nil
}

// Register signs in like Login but with an explicit display name.
func (s Session) Register(email, password, name string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return s, ErrMissingCredentials
	}
	if strings.TrimSpace(name) == "" {
		return s, errors.New("name is required")
	}
	s.User = &User{Email: email, Name: name}
	s.IsAuthenticated = true
	return s, nil
}

// Logout clears the user. The view mode is kept.
func (s Session) Logout() Session {
	s.User = nil
	s.IsAuthenticated = false
	return s
}

// ToggleViewMode switches between the two view modes.
func (s Session) ToggleViewMode() Session {
	if s.ViewMode == ViewPrompt {
		s.ViewMode = ViewTraditional
	} else {
		s.ViewMode = ViewPrompt
	}
	return s
}

// SetViewMode sets the view mode, rejecting unknown modes.
func (s Session) SetViewMode(mode ViewMode) (Session, error) {
	if !mode.Valid() {
		return s, fmt.Errorf("invalid view mode %q", mode)
	}
	s.ViewMode = mode
	return s, nil
}

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewPrompt || m == ViewTraditional
}
