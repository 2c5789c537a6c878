// Package client provides a Go API client for the notewall server. It keeps
// the session cookie in a jar, so one client value behaves like one logged-in
// browser tab.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"

	"github.com/notewall/notewall/models"
)

// Sentinel errors surfaced for the statuses callers usually branch on.
// Other failures carry the server's message verbatim.
var (
	// ErrUnauthorized covers missing, expired and insufficient sessions.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict indicates a signup against a taken username or email.
	ErrConflict = errors.New("conflict")
)

// Client talks to a notewall server over its REST API.
type Client struct {
	http *resty.Client
}

// New creates a Client for the server at baseURL. The session cookie set by
// Login or SignUp is retained and sent on subsequent calls.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}, nil
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type notePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// SignUp registers a new account and stores the session cookie.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Username: username, Email: email, Password: password}).
		SetResult(&user).
		Post("/api/users/signup")
	if err != nil {
		return nil, fmt.Errorf("signup request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates and stores the session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Username: username, Password: password}).
		SetResult(&user).
		Post("/api/users/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout destroys the current session. Safe to call without one.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser returns the account behind the stored session.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("current user request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListNotes returns the caller's notes, oldest first.
func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes := make([]models.Note, 0)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote returns one note by its ID.
func (c *Client) GetNote(ctx context.Context, noteID string) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&note).
		SetPathParam("noteID", noteID).
		Get("/api/notes/{noteID}")
	if err != nil {
		return nil, fmt.Errorf("get note request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &note, nil
}

// CreateNote stores a new note.
func (c *Client) CreateNote(ctx context.Context, title, text string) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(notePayload{Title: title, Text: text}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("create note request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &note, nil
}

// UpdateNote replaces a note's title and text. An empty text clears the
// note body.
func (c *Client) UpdateNote(ctx context.Context, noteID, title, text string) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(notePayload{Title: title, Text: text}).
		SetResult(&note).
		SetPathParam("noteID", noteID).
		Patch("/api/notes/{noteID}")
	if err != nil {
		return nil, fmt.Errorf("update note request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &note, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("noteID", noteID).
		Delete("/api/notes/{noteID}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// mapHTTPError converts a non-2xx response into an error. 401 and 409 map
// onto sentinels wrapping the server message, everything else carries the
// message alone.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := serverMessage(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode(), message)
	}
}

func serverMessage(resp *resty.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		return resp.Status()
	}

	return body.Error
}
