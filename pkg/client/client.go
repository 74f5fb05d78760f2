// Package client is a thin typed client for the Inkwell API. It owns the
// bearer token for the session and keeps the session store in sync with
// auth outcomes; it never retries and enforces no timeout of its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/inkwell-app/inkwell/backend/internal/session"
)

// APIError carries the HTTP status and message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the Inkwell API and mirrors auth state into the
// session store.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	session *session.Store
}

// New creates a client. The session store seeds no token: a restarted
// process shows the cached user but re-authenticates for API calls.
func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
	}
}

// userPayload is the user record as the server serializes it.
type userPayload struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

func (u userPayload) toSession() session.User {
	return session.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
}

// SignUp creates an account and signs the session in.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (session.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.authenticate(ctx, "/api/v1/auth/signup", body)
}

// SignIn authenticates and signs the session in.
func (c *Client) SignIn(ctx context.Context, email, password string) (session.User, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/api/v1/auth/signin", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (session.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return session.User{}, err
	}
	if resp.User == nil {
		return session.User{}, &APIError{Status: http.StatusInternalServerError, Message: "missing user in auth response"}
	}

	c.token = resp.Token
	u := resp.User.toSession()
	c.session.Login(u)
	return u, nil
}

// Me fetches the current session's user. Returns (nil, nil) when there is
// no session; only transport or server failures return an error.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var resp struct {
		User *userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, nil
	}
	u := resp.User.toSession()
	return &u, nil
}

// UpdateProfile sends the partial profile change, then merges the
// server's updated record into the mirror.
func (c *Client) UpdateProfile(ctx context.Context, upd session.ProfileUpdate) (session.User, error) {
	body := map[string]any{}
	if upd.Bio != nil {
		body["bio"] = *upd.Bio
	}
	if upd.ProfileImage != nil {
		body["profile_image"] = *upd.ProfileImage
	}

	var user userPayload
	if err := c.do(ctx, http.MethodPatch, "/api/v1/users/me", body, &user); err != nil {
		return session.User{}, err
	}

	c.session.UpdateProfile(session.ProfileUpdate{
		Bio:          &user.Bio,
		ProfileImage: &user.ProfileImage,
	})
	return user.toSession(), nil
}

// Logout ends the session: best-effort server call, then the token and
// the mirrored state are cleared regardless.
func (c *Client) Logout(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.token = ""
	c.session.Logout()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Message: errBody.Message}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
