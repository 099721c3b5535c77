// Package twitter publishes video jobs to X (Twitter) with a simulated
// backend.
package twitter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"vidpub/internal/logutil"
	"vidpub/internal/publish"
)

const (
	EnvAPIKey       = "TWITTER_API_KEY"
	EnvAPISecret    = "TWITTER_API_SECRET"
	EnvAccessToken  = "TWITTER_ACCESS_TOKEN"
	EnvAccessSecret = "TWITTER_ACCESS_TOKEN_SECRET"

	platformName = "twitter"

	// maxTweetRunes is the platform limit on tweet text.
	maxTweetRunes = 280
)

// Config captures the OAuth 1.0a user-context credentials.
type Config struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// ConfigFromEnv reads the Twitter settings. Missing values are reported
// by Validate, not here.
func ConfigFromEnv() Config {
	return Config{
		APIKey:       strings.TrimSpace(os.Getenv(EnvAPIKey)),
		APISecret:    strings.TrimSpace(os.Getenv(EnvAPISecret)),
		AccessToken:  strings.TrimSpace(os.Getenv(EnvAccessToken)),
		AccessSecret: strings.TrimSpace(os.Getenv(EnvAccessSecret)),
	}
}

// Publisher implements the publish.Publisher interface for X (Twitter).
type Publisher struct {
	cfg Config
}

// New constructs a Twitter publisher from injected configuration.
func New(cfg Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Name identifies the platform.
func (p *Publisher) Name() string { return platformName }

// Validate checks that all four OAuth credentials are present.
func (p *Publisher) Validate() error {
	var missing []string
	if p.cfg.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if p.cfg.APISecret == "" {
		missing = append(missing, EnvAPISecret)
	}
	if p.cfg.AccessToken == "" {
		missing = append(missing, EnvAccessToken)
	}
	if p.cfg.AccessSecret == "" {
		missing = append(missing, EnvAccessSecret)
	}
	if len(missing) > 0 {
		return publish.ConfigError{Platform: platformName, Missing: missing}
	}
	return nil
}

// Publish posts the job's video with the assembled tweet text.
func (p *Publisher) Publish(ctx context.Context, job *publish.VideoJob, opts publish.PublishOptions) (*publish.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := BuildTweet(job)

	if opts.DryRun {
		return &publish.Result{
			Platform:    platformName,
			Success:     true,
			PublishedAt: publish.Timestamp(),
			Message:     fmt.Sprintf("dry run: skipped posting %q to Twitter (%d chars)", job.Title, len([]rune(text))),
		}, nil
	}

	id := publish.SimulatedID(platformName, job.Title, job.Video.URL, text)
	logutil.Debugf("twitter: posted tweet id=%s", id)

	return &publish.Result{
		Platform:    platformName,
		Success:     true,
		PublishedAt: publish.Timestamp(),
		Message:     fmt.Sprintf("posted %q to Twitter", job.Title),
		ExternalID:  id,
		URL:         fmt.Sprintf("https://twitter.com/i/status/%s", id),
	}, nil
}

// BuildTweet assembles the tweet text: the per-platform override when
// set, else the description, else the title, truncated to the platform
// limit with a trailing ellipsis.
func BuildTweet(job *publish.VideoJob) string {
	text := job.BaseText()
	if override, ok := job.OverrideString(platformName, "text"); ok {
		text = override
	}

	runes := []rune(text)
	if len(runes) <= maxTweetRunes {
		return text
	}
	return string(runes[:maxTweetRunes-1]) + "…"
}
