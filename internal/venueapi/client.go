package venueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// Client talks to the remote venue REST backend. List endpoints are retried;
// CreateBooking is never retried here so one submit maps to at most one
// booking attempt on the wire.
type Client struct {
	baseURL  string
	http     *http.Client
	strategy retry.Strategy
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (c *Client) FetchHalls(ctx context.Context) ([]domain.Hall, error) {
	var halls []domain.Hall
	if err := c.getList(ctx, "/halls/", &halls); err != nil {
		return nil, fmt.Errorf("fetch halls: %w", err)
	}
	return halls, nil
}

func (c *Client) FetchMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := c.getList(ctx, "/menu/items/", &items); err != nil {
		return nil, fmt.Errorf("fetch menu items: %w", err)
	}
	return items, nil
}

func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal booking: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		var conf domain.BookingConfirmation
		if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
			return nil, fmt.Errorf("decode confirmation: %w", err)
		}
		return &conf, nil

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", domain.ErrServerFailure, resp.StatusCode)

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionRejected, rejectionDetail(resp.Body))
	}
}

// getList decodes either a bare JSON array or the paginated {"results": [...]}
// envelope the backend switches to on long lists.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	return retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status %d", domain.ErrServerFailure, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
		}

		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
			raw = envelope.Results
		}

		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}, c.strategy)
}

func rejectionDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Detail == "" {
		return "booking request refused"
	}
	return payload.Detail
}
