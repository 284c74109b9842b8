// Package remote is the HTTP client for the studio's booking service. It
// forwards prepared booking requests and translates replies into domain
// terms; it performs no retries, the intake flow treats every attempt as
// user-initiated.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/service/ports"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      ports.CredentialProvider
	logger     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, creds ports.CredentialProvider, log logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
		logger:     log,
	}
}

// errorBody is the error reply shape of the booking service.
type errorBody struct {
	Message string `json:"message"`
}

// Submit POSTs the booking request. A bearer token is attached when the
// credential provider yields one; token lookup failures downgrade to an
// anonymous submission rather than blocking the booking.
func (c *Client) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.SubmissionReceipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	token, err := c.creds.CurrentToken(ctx)
	if err != nil {
		c.logger.Warn("token lookup failed, submitting anonymously",
			logger.String("error", err.Error()),
		)
	} else if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	var receipt domain.SubmissionReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		// A 2xx with an unreadable body is still a success; the
		// caller falls back to the generic confirmation.
		receipt = domain.SubmissionReceipt{}
	}

	return &receipt, nil
}
