package publish

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"vidpub/internal/logutil"
)

// Options select the targets and mode for one dispatch.
type Options struct {
	DryRun    bool     `json:"dryRun,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

// Processor dispatches a job to a fixed set of registered publishers. It
// holds no state between calls beyond the registry itself.
type Processor struct {
	order  []Publisher
	byName map[string]Publisher
}

// NewProcessor builds a processor over the given publishers. Registration
// order is preserved and drives default target selection.
func NewProcessor(pubs ...Publisher) *Processor {
	p := &Processor{byName: make(map[string]Publisher, len(pubs))}
	for _, pub := range pubs {
		if _, ok := p.byName[pub.Name()]; ok {
			continue
		}
		p.byName[pub.Name()] = pub
		p.order = append(p.order, pub)
	}
	return p
}

// Platforms lists the registered platform names in registration order.
func (p *Processor) Platforms() []string {
	return lo.Map(p.order, func(pub Publisher, _ int) string { return pub.Name() })
}

// Publish runs the job against the selected platforms and aggregates one
// result per target. Per-platform failures (unknown name, missing
// configuration, publish error) become failed results; only a malformed
// job aborts the dispatch.
func (p *Processor) Publish(ctx context.Context, job *VideoJob, opts Options) (*Report, error) {
	if job == nil {
		return nil, JobError{Reason: "job is required"}
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	targets := p.resolveTargets(opts.Platforms)
	report := &Report{Results: make([]Result, 0, len(targets))}

	for _, name := range targets {
		pub, ok := p.byName[name]
		if !ok {
			logutil.Errorf("unknown platform %q requested", name)
			report.Results = append(report.Results, failed(name, fmt.Sprintf("unknown platform %q", name)))
			continue
		}

		if err := pub.Validate(); err != nil {
			logutil.Errorf("%s: %v", name, err)
			report.Results = append(report.Results, failed(name, err.Error()))
			continue
		}

		result, err := pub.Publish(ctx, job, PublishOptions{DryRun: opts.DryRun})
		if err != nil {
			logutil.Errorf("%s: publish failed: %v", name, err)
			report.Results = append(report.Results, failed(name, err.Error()))
			continue
		}

		logutil.Debugf("%s: %s", name, result.Message)
		report.Results = append(report.Results, *result)
	}

	return report, nil
}

// resolveTargets normalizes the requested platform names, keeping the
// first occurrence of each. An empty request selects every registered
// platform.
func (p *Processor) resolveTargets(requested []string) []string {
	if len(requested) == 0 {
		return p.Platforms()
	}

	cleaned := make([]string, 0, len(requested))
	for _, name := range requested {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		cleaned = append(cleaned, name)
	}

	return lo.Uniq(cleaned)
}

func failed(platform, message string) Result {
	return Result{
		Platform:    platform,
		PublishedAt: Timestamp(),
		Message:     message,
	}
}
