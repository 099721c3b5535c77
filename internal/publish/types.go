package publish

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// VideoAsset references the media file a job publishes.
type VideoAsset struct {
	URL string `json:"url"`
}

// VideoJob describes one video to publish. A job is never mutated after
// construction; publishers only read from it.
type VideoJob struct {
	Title             string                     `json:"title"`
	Description       string                     `json:"description,omitempty"`
	Video             VideoAsset                 `json:"video"`
	Tags              []string                   `json:"tags,omitempty"`
	PlatformOverrides map[string]json.RawMessage `json:"platformOverrides,omitempty"`
}

// Validate reports job-level malformation before any publisher runs.
func (j *VideoJob) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return JobError{Reason: "title is required"}
	}
	if strings.TrimSpace(j.Video.URL) == "" {
		return JobError{Reason: "video.url is required"}
	}
	return nil
}

// OverrideString returns a per-platform override field when it is present
// and is a JSON string. Overrides are free-form, so the type is checked
// before use.
func (j *VideoJob) OverrideString(platform, field string) (string, bool) {
	raw, ok := j.PlatformOverrides[platform]
	if !ok {
		return "", false
	}
	res := gjson.GetBytes(raw, field)
	if res.Type != gjson.String {
		return "", false
	}
	return res.String(), true
}

// BaseText is the caption seed: the description when present, the title
// otherwise.
func (j *VideoJob) BaseText() string {
	if j.Description != "" {
		return j.Description
	}
	return j.Title
}

// Hashtags returns the job tags normalized to carry a leading '#'.
func (j *VideoJob) Hashtags() []string {
	tags := make([]string, 0, len(j.Tags))
	for _, tag := range j.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	return tags
}

// PublishOptions control a single publisher invocation.
type PublishOptions struct {
	DryRun bool
}

// Result is the outcome of one publisher's attempt.
type Result struct {
	Platform    string `json:"platform"`
	Success     bool   `json:"success"`
	PublishedAt string `json:"publishedAt"`
	Message     string `json:"message"`
	ExternalID  string `json:"externalId,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Report aggregates the per-platform results of one dispatch, in target
// selection order.
type Report struct {
	Results []Result `json:"results"`
}

// Publisher abstracts a social platform that can publish a video job.
type Publisher interface {
	Name() string
	Validate() error
	Publish(ctx context.Context, job *VideoJob, opts PublishOptions) (*Result, error)
}
