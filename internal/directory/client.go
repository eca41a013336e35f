package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fetcher defines the remote directory operations the UI depends on.
// It is implemented by *Client and can be substituted in tests.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
	FetchPosts(ctx context.Context, userID int) ([]Post, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the directory HTTP API.
type Client struct {
	rest *resty.Client
	log  *zap.SugaredLogger
}

const (
	defaultBaseURL   = "https://jsonplaceholder.typicode.com"
	defaultUserAgent = "roster/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. A zero timeout uses the
// default; a nil logger disables logging.
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	rest := resty.New().
		SetBaseURL(base.String()).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)

	return &Client{rest: rest, log: log}, nil
}

// FetchUsers retrieves the full user list. A JSON null body decodes to a nil
// slice and is returned as success; rendering treats it as an empty directory.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var users []User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	c.log.Infow("fetched users", "count", len(users))
	return users, nil
}

// FetchPosts retrieves the posts belonging to a single user.
func (c *Client) FetchPosts(ctx context.Context, userID int) ([]Post, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if userID <= 0 {
		return nil, fmt.Errorf("user id required")
	}
	query := map[string]string{"userId": strconv.Itoa(userID)}
	var posts []Post
	if err := c.get(ctx, "/posts", query, &posts); err != nil {
		return nil, err
	}
	c.log.Infow("fetched posts", "userId", userID, "count", len(posts))
	return posts, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, dest any) error {
	req := c.rest.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		c.log.Warnw("request failed", "path", path, "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode() >= 400 {
		c.log.Warnw("request rejected", "path", path, "status", resp.StatusCode())
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode())
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
