package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	githubinfra "github.com/m-mizutani/caskbump/pkg/infra/github"
	"github.com/m-mizutani/gt"
)

func TestClient_GetAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/user")
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","name":"The Octocat","email":null,"created_at":"2011-01-25T18:44:36Z"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(context.Background(), "test-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	account, err := client.GetAccount(context.Background())
	gt.NoError(t, err)
	gt.Value(t, account.ID).Equal(int64(583231))
	gt.Value(t, account.Login).Equal("octocat")
	gt.Value(t, account.Name).Equal("The Octocat")
	gt.Value(t, account.Email).Equal("")
	gt.True(t, account.CreatedAt.Equal(time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC)))
}

func TestClient_GetAccount_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(context.Background(), "bad-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	_, err = client.GetAccount(context.Background())
	gt.Error(t, err)
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := githubinfra.NewClient(context.Background(), "")
	gt.Error(t, err)
}
