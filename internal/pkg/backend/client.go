package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Laminito/ameublement-market/internal/pkg/config"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// Client talks to the commerce backend REST API. It is the only place
// that sees raw HTTP responses; everything past it works with canonical
// models and APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithHTTP allows injecting the http.Client, used by tests.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// envelope is the backend's response wrapper. Older backend versions
// put the payload under user/order instead of data; payload() folds
// them.
type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	User       json.RawMessage    `json:"user"`
	Order      json.RawMessage    `json:"order"`
	Token      string             `json:"token"`
	PaymentURL string             `json:"paymentUrl"`
	Pagination *models.Pagination `json:"pagination"`
	Errors     map[string]string  `json:"errors"`
}

func (e *envelope) payload() json.RawMessage {
	switch {
	case len(e.Data) > 0 && string(e.Data) != "null":
		return e.Data
	case len(e.User) > 0 && string(e.User) != "null":
		return e.User
	case len(e.Order) > 0 && string(e.Order) != "null":
		return e.Order
	default:
		return nil
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
			apiErr.Fields = env.Errors
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, err
		}
	}
	return &env, nil
}

// decodePayload unmarshals the envelope payload into out.
func decodePayload(env *envelope, out any) error {
	payload := env.payload()
	if payload == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}
