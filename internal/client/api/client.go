// Package api is the HTTP client for the ledger service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/finchapp/finch/internal/domain/entity"
)

const transactionsPath = "/api/transactions"

// TransactionInput carries the four writable fields of a transaction
type TransactionInput struct {
	Date     string  `json:"date"`
	Payee    string  `json:"payee"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// StatusError is returned when the server answers with a non-2xx status. It
// carries the server's error message when one was sent.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Client talks to the ledger service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// List fetches all transactions
func (c *Client) List(ctx context.Context) ([]entity.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+transactionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var transactions []entity.Transaction
	if err := c.do(req, &transactions); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return transactions, nil
}

// Create stores a new transaction and returns it with its assigned ID
func (c *Client) Create(ctx context.Context, input TransactionInput) (*entity.Transaction, error) {
	req, err := c.jsonRequest(ctx, http.MethodPost, c.baseURL+transactionsPath, input)
	if err != nil {
		return nil, err
	}

	var tx entity.Transaction
	if err := c.do(req, &tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &tx, nil
}

// Update replaces the fields of an existing transaction and returns the
// updated record
func (c *Client) Update(ctx context.Context, id string, input TransactionInput) (*entity.Transaction, error) {
	req, err := c.jsonRequest(ctx, http.MethodPut, c.baseURL+transactionsPath+"/"+id, input)
	if err != nil {
		return nil, err
	}

	var tx entity.Transaction
	if err := c.do(req, &tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &tx, nil
}

// Delete removes a transaction by ID. The server acknowledges deletes of
// unknown IDs as success.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+transactionsPath+"/"+id, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes the request and decodes a JSON response body into out when out
// is non-nil. Non-2xx statuses become a StatusError carrying the server's
// error message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	return strings.TrimSpace(string(data))
}
