package client

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - HTTP клиент сервиса заказов витрины
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// GetOrder - запрос состояния заказа по номеру
func (c *Client) GetOrder(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	endpoint := c.baseURL + "/api/orders/" + url.PathEscape(orderNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var result OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &result, nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNoContent, http.StatusNotFound:
		return ErrOrderNotFound
	default:
		return ErrServiceUnavailable
	}
}
