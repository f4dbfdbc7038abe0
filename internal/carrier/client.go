package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/craftmarket/order-service/internal/config"
)

// Client is a thin JSON client for the carrier API. All business
// decisions about shipment statuses live in the service layer; this
// only moves payloads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.Carrier) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// FetchShipments resolves current statuses for a batch of tracking
// numbers in a single call.
func (c *Client) FetchShipments(ctx context.Context, trackingNumbers []string) ([]Shipment, error) {
	var resp struct {
		Shipments []Shipment `json:"shipments"`
	}
	req := map[string]any{"tracking_numbers": trackingNumbers}
	if err := c.post(ctx, "/v1/tracking", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch shipments: %w", err)
	}
	return resp.Shipments, nil
}

// CreateInternetDocument registers a shipment and returns its tracking
// number.
func (c *Client) CreateInternetDocument(ctx context.Context, req WaybillRequest) (Waybill, error) {
	var wb Waybill
	if err := c.post(ctx, "/v1/documents", req, &wb); err != nil {
		return Waybill{}, fmt.Errorf("failed to create internet document: %w", err)
	}
	return wb, nil
}

func (c *Client) post(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("carrier returned %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
