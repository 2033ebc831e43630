// Package remote implements the UserGateway over the external Circuna HTTP
// API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
)

// Client talks to the remote API. Requests carry no timeout: a hung request
// leaves the current action loading until the user gives up, matching the
// client's one-call-in-flight model.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// UserByPhone resolves GET /users/by-phone/{e164}. A 404 maps to
// domain.ErrUserNotFound; any other non-success status surfaces its code.
func (c *Client) UserByPhone(ctx context.Context, e164 string) (*domain.User, error) {
	return c.fetchUser(ctx, c.baseURL+"/users/by-phone/"+url.PathEscape(e164))
}

// UserByID resolves GET /users/{id}.
func (c *Client) UserByID(ctx context.Context, id int) (*domain.User, error) {
	return c.fetchUser(ctx, c.baseURL+"/users/"+strconv.Itoa(id))
}

func (c *Client) fetchUser(ctx context.Context, endpoint string) (*domain.User, error) {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &domain.StatusError{Code: resp.StatusCode, Text: http.StatusText(resp.StatusCode)}
	}

	var w wireUser
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return mapUser(w), nil
}

// Roles resolves GET /roles.
func (c *Client) Roles(ctx context.Context) ([]domain.Role, error) {
	resp, err := c.get(ctx, c.baseURL+"/roles")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.StatusError{Code: resp.StatusCode, Text: http.StatusText(resp.StatusCode)}
	}

	var wires []wireRole
	if err := json.NewDecoder(resp.Body).Decode(&wires); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(wires))
	for _, w := range wires {
		roles = append(roles, domain.Role{ID: w.ID, Name: w.Name})
	}
	return roles, nil
}

// Register posts the creation payload. On failure the server's detail
// message is extracted from the body when present, else the status text.
func (c *Client) Register(ctx context.Context, req ports.RegistrationRequest) (*domain.User, error) {
	payload := registerPayload{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Location:    req.Location,
		Email:       req.Email,
		Roles:       req.RoleIDs,
	}
	if payload.Roles == nil {
		payload.Roles = []int{}
	}
	if req.Provider != nil {
		payload.ProviderProfile = &wireProviderProfile{
			BusinessName: req.Provider.BusinessName,
			Rating:       req.Provider.Rating,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/register", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.APIError{Status: resp.StatusCode, Detail: c.readDetail(resp)}
	}

	var w wireUser
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode registered user: %w", err)
	}
	return mapUser(w), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	return resp, nil
}

// readDetail pulls the "detail" message out of a failure body, falling back
// to the transport status text.
func (c *Client) readDetail(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err == nil {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Detail != "" {
			return eb.Detail
		}
	}
	return http.StatusText(resp.StatusCode)
}
