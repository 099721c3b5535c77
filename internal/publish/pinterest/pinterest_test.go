package pinterest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"vidpub/internal/publish"
)

func validConfig() Config {
	return Config{AccessToken: "token", BoardID: "board-1"}
}

func TestValidateListsMissingVariables(t *testing.T) {
	err := New(Config{}).Validate()
	var cfgErr publish.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "pinterest", cfgErr.Platform)
	require.Equal(t, []string{EnvAccessToken, EnvBoardID}, cfgErr.Missing)

	require.NoError(t, New(validConfig()).Validate())
}

func TestPublishDefaultBoard(t *testing.T) {
	job := &publish.VideoJob{Title: "Demo", Video: publish.VideoAsset{URL: "https://cdn.example.com/demo.mp4"}}

	result, err := New(validConfig()).Publish(context.Background(), job, publish.PublishOptions{})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Contains(t, result.Message, "default board")
	require.NotEmpty(t, result.ExternalID)
	require.Contains(t, result.URL, result.ExternalID)
}

func TestPublishBoardSectionOverride(t *testing.T) {
	job := &publish.VideoJob{
		Title: "Demo",
		Video: publish.VideoAsset{URL: "https://cdn.example.com/demo.mp4"},
		PlatformOverrides: map[string]json.RawMessage{
			"pinterest": json.RawMessage(`{"boardSection": "Summer"}`),
		},
	}

	result, err := New(validConfig()).Publish(context.Background(), job, publish.PublishOptions{})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Contains(t, result.Message, `board section "Summer"`)
}

func TestPublishDryRun(t *testing.T) {
	job := &publish.VideoJob{Title: "Demo", Video: publish.VideoAsset{URL: "https://cdn.example.com/demo.mp4"}}

	result, err := New(validConfig()).Publish(context.Background(), job, publish.PublishOptions{DryRun: true})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Contains(t, result.Message, "dry run")
	require.Empty(t, result.ExternalID)
	require.Empty(t, result.URL)
}
