package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	ErrNotConfigured = errors.New("google login is not configured")
	ErrCodeExchange  = errors.New("authorization code exchange failed")
	ErrProfileFetch  = errors.New("could not fetch Google profile")
)

// Profile is the slice of Google's userinfo payload the app consumes:
// the subject id for account linking, the names and picture for the
// user's profile.
type Profile struct {
	Subject    string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Config holds the Google OAuth settings, including the frontend URLs
// the callback redirects to.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	SuccessURL   string
	ErrorURL     string
}

// Google drives the server-side "sign in with Google" flow: consent
// redirect, code exchange, and profile fetch.
type Google struct {
	conf       *oauth2.Config
	successURL string
	errorURL   string
}

// NewGoogle creates a Google OAuth client from the app config
func NewGoogle(cfg Config) *Google {
	return &Google{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		successURL: cfg.SuccessURL,
		errorURL:   cfg.ErrorURL,
	}
}

// IsConfigured reports whether client credentials are present
func (g *Google) IsConfigured() bool {
	return g.conf.ClientID != "" && g.conf.ClientSecret != ""
}

// AuthURL returns the consent-screen URL carrying the given state
func (g *Google) AuthURL(state string) string {
	return g.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// FetchProfile exchanges the callback code for a token and loads the
// user's Google profile with it
func (g *Google) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeExchange, err)
	}

	resp, err := g.conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrProfileFetch, resp.StatusCode, body)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}

	return &profile, nil
}

// SuccessURL is the frontend URL for a completed login
func (g *Google) SuccessURL() string {
	return g.successURL
}

// ErrorURL is the frontend URL for a failed login
func (g *Google) ErrorURL() string {
	return g.errorURL
}
