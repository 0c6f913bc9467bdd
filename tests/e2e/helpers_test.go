package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// BASE_URL未設定の場合はスキップ（サーバー起動が前提のテスト）
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e test")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthLoginResponse struct {
	User  UserDTO        `json:"user"`
	Token JwtAccessToken `json:"token"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	return b
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeLogin(t *testing.T, body []byte) AuthLoginResponse {
	t.Helper()
	var v AuthLoginResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(AuthLoginResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func uniqueEmail() string {
	return "e2e-" + time.Now().Format("20060102-150405.000000000") + "@example.com"
}

// 新規ユーザーを登録してaccess_tokenを取得
func registerAndLogin(t *testing.T, c *TestClient, ctx context.Context) string {
	t.Helper()

	email := uniqueEmail()
	password := "E2E-Sufficiently-Long-PW"

	reg := RegisterRequest{Name: "E2E User", Email: email, Password: password}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", mustMarshal(t, reg))
	requireStatus(t, resp, http.StatusCreated, body)

	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", mustMarshal(t, LoginRequest{Email: email, Password: password}))
	requireStatus(t, resp, http.StatusOK, body)

	login := mustDecodeLogin(t, body)
	if strings.TrimSpace(login.Token.AccessToken) == "" {
		t.Fatalf("access token is empty: body=%s", string(body))
	}

	return login.Token.AccessToken
}
