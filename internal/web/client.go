package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIClient envía los formularios del front al API de autenticación.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// AuthResponse refleja la respuesta JSON del API.
type AuthResponse struct {
	AccountID   int64  `json:"account_id"`
	DisplayName string `json:"display_name"`
	Message     string `json:"message"`
	Token       string `json:"token"`
}

// APIError conserva el status y el mensaje de error que devolvió el API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// SignUpRequest es el payload de registro que espera el API.
type SignUpRequest struct {
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	NationalID  string `json:"national_id"`
	Gender      string `json:"gender,omitempty"`
	AccountType string `json:"account_type"`
	Branch      string `json:"branch"`
}

// LoginRequest es el payload de login que espera el API.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) SignUp(ctx context.Context, req SignUpRequest) (AuthResponse, error) {
	return c.post(ctx, "/auth/signup", req)
}

func (c *APIClient) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	return c.post(ctx, "/auth/login", req)
}

func (c *APIClient) post(ctx context.Context, path string, payload any) (AuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return AuthResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return AuthResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AuthResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = "request failed"
		}
		return AuthResponse{}, &APIError{Status: resp.StatusCode, Message: msg}
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}
