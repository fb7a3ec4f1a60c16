package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Message is one outbound notification. Delivery is best-effort: callers log
// failures and never block a committed transition on the outcome.
type Message struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Links      []Link   `json:"links,omitempty"`
	FileRefs   []string `json:"fileRefs,omitempty"`
}

// Link is a labelled deep link embedded in a notification.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DirectoryUser is a recipient as known to the notification gateway.
type DirectoryUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

type Gateway interface {
	Send(ctx context.Context, message Message) error
	LookupUser(ctx context.Context, id string) (DirectoryUser, error)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL, apiKey string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *Client) Send(ctx context.Context, message Message) error {
	if len(message.Recipients) == 0 {
		return errors.New("recipients cannot be empty")
	}

	msgURL, err := c.getURL("messages")

	if err != nil {
		return err
	}

	body, err := json.Marshal(message)

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", msgURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}

func (c *Client) LookupUser(ctx context.Context, id string) (DirectoryUser, error) {
	id = strings.TrimSpace(id)

	if len(id) == 0 {
		return DirectoryUser{}, errors.New("user id cannot be empty")
	}

	cachedUser, found := c.cache.Get(id)

	if found {
		return cachedUser.(DirectoryUser), nil
	}

	userURL, err := c.getURL("directory", "users", id)

	if err != nil {
		return DirectoryUser{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", userURL, http.NoBody)

	if err != nil {
		return DirectoryUser{}, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return DirectoryUser{}, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return DirectoryUser{}, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return DirectoryUser{}, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return DirectoryUser{}, fmt.Errorf("failed to read body: %w", readErr)
	}

	var user = DirectoryUser{}
	err = json.Unmarshal(bodyBytes, &user)

	if err != nil {
		return DirectoryUser{}, fmt.Errorf("failed reading body: %w", err)
	}

	c.cache.Set(id, user, cache.DefaultExpiration)

	return user, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
