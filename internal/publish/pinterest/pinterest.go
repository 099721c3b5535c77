// Package pinterest publishes video jobs as Pins on a configured board
// with a simulated backend.
package pinterest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"vidpub/internal/logutil"
	"vidpub/internal/publish"
)

const (
	EnvAccessToken = "PINTEREST_ACCESS_TOKEN"
	EnvBoardID     = "PINTEREST_BOARD_ID"

	platformName = "pinterest"
)

// Config captures the credentials and target board for Pinterest.
type Config struct {
	AccessToken string
	BoardID     string
}

// ConfigFromEnv reads the Pinterest settings. Missing values are reported
// by Validate, not here.
func ConfigFromEnv() Config {
	return Config{
		AccessToken: strings.TrimSpace(os.Getenv(EnvAccessToken)),
		BoardID:     strings.TrimSpace(os.Getenv(EnvBoardID)),
	}
}

// Publisher implements the publish.Publisher interface for Pinterest.
type Publisher struct {
	cfg Config
}

// New constructs a Pinterest publisher from injected configuration.
func New(cfg Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Name identifies the platform.
func (p *Publisher) Name() string { return platformName }

// Validate checks that the required settings are present.
func (p *Publisher) Validate() error {
	var missing []string
	if p.cfg.AccessToken == "" {
		missing = append(missing, EnvAccessToken)
	}
	if p.cfg.BoardID == "" {
		missing = append(missing, EnvBoardID)
	}
	if len(missing) > 0 {
		return publish.ConfigError{Platform: platformName, Missing: missing}
	}
	return nil
}

// Publish pins the job's video to the configured board. An optional
// "boardSection" override selects a sub-board; otherwise the pin lands on
// the default board.
func (p *Publisher) Publish(ctx context.Context, job *publish.VideoJob, opts publish.PublishOptions) (*publish.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	destination := "the default board"
	section, hasSection := job.OverrideString(platformName, "boardSection")
	if hasSection {
		destination = fmt.Sprintf("board section %q", section)
	}

	if opts.DryRun {
		return &publish.Result{
			Platform:    platformName,
			Success:     true,
			PublishedAt: publish.Timestamp(),
			Message:     fmt.Sprintf("dry run: skipped pinning %q to %s", job.Title, destination),
		}, nil
	}

	id := publish.SimulatedID(platformName, job.Title, job.Video.URL, section)
	logutil.Debugf("pinterest: created pin id=%s board=%s", id, p.cfg.BoardID)

	return &publish.Result{
		Platform:    platformName,
		Success:     true,
		PublishedAt: publish.Timestamp(),
		Message:     fmt.Sprintf("pinned %q to %s", job.Title, destination),
		ExternalID:  id,
		URL:         fmt.Sprintf("https://www.pinterest.com/pin/%s/", id),
	}, nil
}
