package httpclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/linguohua/pinner/errorcode"
)

var log = logging.Logger("httpclient")

const apiPrefix = "/api/v0"

// Error daemon side command failure
type Error struct {
	Command    string
	StatusCode int
	Code       errorcode.ErrorCode
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("command %s: %s (http %d, code %d)", e.Command, e.Message, e.StatusCode, e.Code)
}

// Client dispatches commands against the daemon's HTTP command api.
// Safe for concurrent use, holds no state besides the connection settings.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken sends token as a bearer Authorization header with every command
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per command timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithInsecureSkipVerify skip tls verify
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithHTTPClient replaces the underlying http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the daemon command api at apiURL,
// example: http://127.0.0.1:5001
func New(apiURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, xerrors.Errorf("parse api url %s: %w", apiURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, xerrors.Errorf("api url %s: unsupported scheme %q", apiURL, u.Scheme)
	}

	client := &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

type errorEnvelope struct {
	Message string
	Code    int
}

// Execute runs a single command and returns the raw response body.
// arg is appended to query when not empty. The command api expects POST
// and renders failures as a json error envelope.
func (c *Client) Execute(ctx context.Context, command, arg string, query url.Values) ([]byte, error) {
	values := url.Values{}
	for key, list := range query {
		for _, value := range list {
			values.Add(key, value)
		}
	}
	if arg != "" {
		values.Set("arg", arg)
	}

	reqURL := fmt.Sprintf("%s%s/%s?%s", c.apiURL, apiPrefix, command, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return nil, xerrors.Errorf("new request %s: %w", command, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debugf("execute %s arg:%s", command, arg)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("execute %s: %w", command, err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.Errorf("read %s response: %w", command, err)
	}

	if resp.StatusCode != http.StatusOK {
		cmdErr := &Error{
			Command:    command,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}

		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
			cmdErr.Message = envelope.Message
			cmdErr.Code = errorcode.ErrorCode(envelope.Code)
		}

		return nil, cmdErr
	}

	return body, nil
}
