// Package instagram publishes video jobs as Reels on an Instagram
// business account. The backend is simulated; a real Graph API client
// would slot in behind Publish without changing the contract.
package instagram

import (
	"context"
	"fmt"
	"os"
	"strings"

	"vidpub/internal/logutil"
	"vidpub/internal/publish"
)

const (
	EnvAccessToken       = "INSTAGRAM_ACCESS_TOKEN"
	EnvBusinessAccountID = "INSTAGRAM_BUSINESS_ACCOUNT_ID"

	platformName = "instagram"
)

// Config captures the credentials an Instagram business integration needs.
type Config struct {
	AccessToken       string
	BusinessAccountID string
}

// ConfigFromEnv reads the Instagram settings. Missing values are reported
// by Validate, not here.
func ConfigFromEnv() Config {
	return Config{
		AccessToken:       strings.TrimSpace(os.Getenv(EnvAccessToken)),
		BusinessAccountID: strings.TrimSpace(os.Getenv(EnvBusinessAccountID)),
	}
}

// Publisher implements the publish.Publisher interface for Instagram.
type Publisher struct {
	cfg Config
}

// New constructs an Instagram publisher from injected configuration.
func New(cfg Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Name identifies the platform.
func (p *Publisher) Name() string { return platformName }

// Validate checks that the required settings are present, listing every
// missing variable by name.
func (p *Publisher) Validate() error {
	var missing []string
	if p.cfg.AccessToken == "" {
		missing = append(missing, EnvAccessToken)
	}
	if p.cfg.BusinessAccountID == "" {
		missing = append(missing, EnvBusinessAccountID)
	}
	if len(missing) > 0 {
		return publish.ConfigError{Platform: platformName, Missing: missing}
	}
	return nil
}

// Publish posts the job's video as a Reel with the assembled caption.
func (p *Publisher) Publish(ctx context.Context, job *publish.VideoJob, opts publish.PublishOptions) (*publish.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	caption := BuildCaption(job)

	if opts.DryRun {
		return &publish.Result{
			Platform:    platformName,
			Success:     true,
			PublishedAt: publish.Timestamp(),
			Message:     fmt.Sprintf("dry run: skipped publishing %q to Instagram (caption %d chars)", job.Title, len(caption)),
		}, nil
	}

	id := publish.SimulatedID(platformName, job.Title, job.Video.URL, caption)
	logutil.Debugf("instagram: published reel media_id=%s account=%s", id, p.cfg.BusinessAccountID)

	return &publish.Result{
		Platform:    platformName,
		Success:     true,
		PublishedAt: publish.Timestamp(),
		Message:     fmt.Sprintf("published %q to Instagram", job.Title),
		ExternalID:  id,
		URL:         fmt.Sprintf("https://www.instagram.com/reel/%s/", id),
	}, nil
}

// BuildCaption assembles the caption: the per-platform override when set,
// else the description, else the title, followed by a blank line and the
// hashtags.
func BuildCaption(job *publish.VideoJob) string {
	text := job.BaseText()
	if override, ok := job.OverrideString(platformName, "caption"); ok {
		text = override
	}

	tags := job.Hashtags()
	if len(tags) == 0 {
		return text
	}
	return text + "\n\n" + strings.Join(tags, " ")
}
