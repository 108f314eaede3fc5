package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/google/uuid"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// Config holds Supabase connection settings.
type Config struct {
	// BaseURL is the project URL, e.g. https://xyz.supabase.co
	BaseURL string
	// AnonKey is the public API key sent with every request.
	AnonKey string
	// ServiceKey is the privileged key needed for the compensating
	// auth-identity delete. Optional.
	ServiceKey string
	// Timeout bounds each remote call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds every call to the backend.
const DefaultTimeout = 10 * time.Second

// Client talks to Supabase over its REST surfaces: PostgREST for table
// resources and GoTrue for auth.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	http       *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a Supabase client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

const tournamentSelect = "select=*,participants(*)"

func (c *Client) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	url := fmt.Sprintf("%s/rest/v1/tournaments?%s&order=start_date.asc", c.baseURL, tournamentSelect)

	var tournaments []model.Tournament
	if err := c.doJSON(ctx, http.MethodGet, url, nil, c.anonKey, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (c *Client) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	url := fmt.Sprintf("%s/rest/v1/tournaments?id=eq.%s&%s&limit=1", c.baseURL, neturl.QueryEscape(string(id)), tournamentSelect)

	var tournaments []model.Tournament
	if err := c.doJSON(ctx, http.MethodGet, url, nil, c.anonKey, &tournaments); err != nil {
		return nil, err
	}
	if len(tournaments) == 0 {
		return nil, model.ErrTournamentNotFound
	}
	return &tournaments[0], nil
}

func (c *Client) GetProfile(ctx context.Context, sess *model.Session) (*model.Profile, error) {
	if _, err := uuid.Parse(sess.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", sess.UserID, err)
	}
	url := fmt.Sprintf("%s/rest/v1/profiles?id=eq.%s&select=*&limit=1", c.baseURL, sess.UserID)

	var profiles []model.Profile
	if err := c.doJSON(ctx, http.MethodGet, url, nil, sess.AccessToken, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, model.ErrProfileNotFound
	}
	return &profiles[0], nil
}

func (c *Client) InsertProfile(ctx context.Context, profile model.Profile, accessToken string) error {
	url := fmt.Sprintf("%s/rest/v1/profiles", c.baseURL)
	return c.doJSON(ctx, http.MethodPost, url, []model.Profile{profile}, accessToken, nil)
}

func (c *Client) InsertRegistration(ctx context.Context, sess *model.Session, tournamentID model.TournamentID) error {
	if _, err := uuid.Parse(sess.UserID); err != nil {
		return fmt.Errorf("invalid user id %q: %w", sess.UserID, err)
	}
	url := fmt.Sprintf("%s/rest/v1/registrations", c.baseURL)
	rows := []model.Registration{{
		UserID:        sess.UserID,
		TournamentID:  tournamentID,
		PaymentStatus: model.PaymentCompleted,
	}}
	return c.doJSON(ctx, http.MethodPost, url, rows, sess.AccessToken, nil)
}

// doJSON performs one request against the backend. body (when non-nil) is
// JSON-encoded; out (when non-nil) receives the decoded response. bearer is
// the Authorization token, falling back to the anon key; the anon key is
// always sent as the apikey header.
func (c *Client) doJSON(ctx context.Context, method, url string, body any, bearer string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &model.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return remoteError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &model.RemoteError{Message: "respuesta inesperada del servidor", Status: resp.StatusCode}
		}
	}
	return nil
}
