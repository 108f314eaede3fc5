package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// ErrNoServiceKey is returned when the compensating delete is attempted
// without a configured service key.
var ErrNoServiceKey = errors.New("supabase service key not configured")

// tokenResponse is GoTrue's session payload. The signup endpoint returns
// either this shape (when email confirmation is disabled) or a bare user
// object (when a confirmation mail is sent first), so the fields overlap.
type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	User         *AuthUser `json:"user"`

	// Bare-user shape fields
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (c *Client) SignUpAuth(ctx context.Context, email, password, username string) (*SignUpResult, error) {
	url := fmt.Sprintf("%s/auth/v1/signup", c.baseURL)
	body := map[string]any{
		"email":    email,
		"password": password,
		// Arbitrary metadata attached to the auth identity
		"data": map[string]any{"username": username},
	}

	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, url, body, "", &resp); err != nil {
		return nil, err
	}

	user := AuthUser{ID: resp.ID, Email: resp.Email}
	if user.ID == "" && resp.User != nil {
		user = *resp.User
	}
	if _, err := uuid.Parse(user.ID); err != nil {
		return nil, &model.RemoteError{Message: "el registro no devolvió un usuario válido"}
	}

	result := &SignUpResult{User: user}
	if resp.AccessToken != "" {
		result.Session = authSession(user.ID, resp)
	}
	return result, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthSession, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.baseURL)
	body := map[string]any{"email": email, "password": password}

	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, url, body, "", &resp); err != nil {
		return nil, err
	}

	userID := resp.ID
	if resp.User != nil {
		userID = resp.User.ID
	}
	return authSession(userID, resp), nil
}

func (c *Client) DeleteAuthUser(ctx context.Context, userID string) error {
	if c.serviceKey == "" {
		return ErrNoServiceKey
	}
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, userID)
	return c.doJSON(ctx, http.MethodDelete, url, nil, c.serviceKey, nil)
}

// authSession builds an AuthSession, preferring the access token's own
// claims for identity and expiry over the response envelope.
func authSession(userID string, resp tokenResponse) *AuthSession {
	sess := &AuthSession{
		UserID:       userID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if resp.ExpiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			sess.UserID = sub
		}
		if exp, ok := claims["exp"].(float64); ok && exp > 0 {
			sess.ExpiresAt = time.Unix(int64(exp), 0)
		}
	}
	return sess
}
