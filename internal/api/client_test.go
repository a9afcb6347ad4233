package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/messages/process", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ProcessMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.UserID)

		json.NewEncoder(w).Encode(ProcessMessageResponse{
			MessageID: "m1",
			RiskLevel: "low",
			RiskScore: 0.12,
			Response:  "Thanks for checking in.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ProcessMessage(context.Background(), ProcessMessageRequest{
		UserID:  "u1",
		Content: "feeling a bit stressed about exams",
	})
	require.NoError(t, err)
	assert.Equal(t, "low", resp.RiskLevel)
	assert.Equal(t, "Thanks for checking in.", resp.Response)
}

func TestErrorCarriesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Error())
}

func TestErrorFallsBackToGenericMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "<html>Bad Gateway</html>"},
		{"json without detail", `{"error":"something"}`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL)
			_, err := c.RiskProfile(context.Background(), "u1")
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			assert.Equal(t, "request failed with status 502", apiErr.Error())
		})
	}
}

func TestBearerTokenIsSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]CommunityPost{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok123")
	_, err := c.CommunityPosts(context.Background())
	require.NoError(t, err)
}

func TestRiskProfilePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/alerts/risk-profile/u42", r.URL.Path)
		json.NewEncoder(w).Encode(RiskProfileResponse{UserID: "u42", RiskLevel: "medium", AlertCount: 2})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.RiskProfile(context.Background(), "u42")
	require.NoError(t, err)
	assert.Equal(t, "medium", resp.RiskLevel)
	assert.Equal(t, 2, resp.AlertCount)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/community/posts", r.URL.Path)
		json.NewEncoder(w).Encode([]CommunityPost{{ID: "p1", Author: "anon", Content: "hi"}})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	posts, err := c.CommunityPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL)
	_, err := c.CommunityPosts(ctx)
	assert.Error(t, err)
}
