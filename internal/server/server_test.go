package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vidpub/internal/publish"
	"vidpub/internal/publish/instagram"
	"vidpub/internal/publish/pinterest"
	"vidpub/internal/publish/twitter"
)

func testServer() *Server {
	proc := publish.NewProcessor(
		instagram.New(instagram.Config{AccessToken: "t", BusinessAccountID: "acct"}),
		pinterest.New(pinterest.Config{AccessToken: "t", BoardID: "board"}),
		twitter.New(twitter.Config{APIKey: "k", APISecret: "s", AccessToken: "t", AccessSecret: "ts"}),
	)
	return New(proc, 8080)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Status    string   `json:"status"`
		Platforms []string `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, []string{"instagram", "pinterest", "twitter"}, body.Platforms)
}

func TestPublishDryRun(t *testing.T) {
	payload := `{
		"job": {"title": "Demo", "video": {"url": "https://cdn.example.com/demo.mp4"}},
		"options": {"dryRun": true, "platforms": ["twitter", "instagram"]}
	}`

	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/publish", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)

	var report publish.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Results, 2)
	require.Equal(t, "twitter", report.Results[0].Platform)
	require.Equal(t, "instagram", report.Results[1].Platform)
	for _, result := range report.Results {
		require.True(t, result.Success)
		require.Empty(t, result.ExternalID)
		require.Empty(t, result.URL)
	}
}

func TestPublishInvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/publish", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["message"], "invalid JSON body")
}

func TestPublishEmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/publish", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["message"])
}

func TestPublishMalformedJob(t *testing.T) {
	payload := `{"job": {"description": "no title or video"}}`

	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/publish", strings.NewReader(payload)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["message"], "invalid job")
}

func TestNotFound(t *testing.T) {
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/nope", nil),
		httptest.NewRequest(http.MethodPost, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/publish", nil),
	} {
		rec := httptest.NewRecorder()
		testServer().Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Not Found", body["message"])
	}
}
