package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMissingField reports a required form field that was empty at submit
// time; no network call is made in that case.
var ErrMissingField = errors.New("missing required field")

// Client defines the interface for submitting forms to the intake API
type Client interface {
	SubmitInquiry(ctx context.Context, req InquiryRequest) error
	SubmitContact(ctx context.Context, req ContactRequest) error
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new intake API client for the given base URL,
// e.g. "http://localhost:5001"
func NewClient(baseURL string) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// InquiryRequest is the payload for the landing page inquiry form
type InquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

func (r InquiryRequest) validate() error {
	return requireFields(map[string]string{
		"name":    r.Name,
		"email":   r.Email,
		"message": r.Message,
	})
}

// ContactRequest is the payload for the contact page form. Dates are ISO
// YYYY-MM-DD strings and are sent exactly as entered.
type ContactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Interest   string `json:"interest"`
	Message    string `json:"message"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	PickupType string `json:"pickupType"`
}

func (r ContactRequest) validate() error {
	return requireFields(map[string]string{
		"name":    r.Name,
		"email":   r.Email,
		"message": r.Message,
	})
}

func requireFields(fields map[string]string) error {
	for _, name := range []string{"name", "email", "message"} {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}

func (c *clientImpl) SubmitInquiry(ctx context.Context, req InquiryRequest) error {
	if err := req.validate(); err != nil {
		return err
	}
	return c.post(ctx, "/api/inquiry", req)
}

func (c *clientImpl) SubmitContact(ctx context.Context, req ContactRequest) error {
	if err := req.validate(); err != nil {
		return err
	}
	return c.post(ctx, "/api/contact", req)
}

func (c *clientImpl) post(ctx context.Context, path string, payload any) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error submitting form: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var response struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &response); err == nil && response.Error != "" {
			return fmt.Errorf("error from intake API: %s", response.Error)
		}
		return fmt.Errorf("error from intake API: status %d", resp.StatusCode)
	}

	return nil
}
