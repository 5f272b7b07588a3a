// ABOUTME: Content service resolves a validated page URL into its title and timecodes
// ABOUTME: Runs the ordered resolution tiers and reports which one produced the result

package content

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"jumpscared-api/core/domain"
	coreerrors "jumpscared-api/core/errors"
	"jumpscared-api/core/interfaces"
	"jumpscared-api/core/timecode"
)

// Config holds content resolution settings
type Config struct {
	// BaseURL is the site root used for the structured API
	BaseURL string

	// Detector classifies interstitials, defaults to NewDetector()
	Detector *Detector
}

// ContentService resolves content pages through an ordered tier chain
type ContentService struct {
	deps     interfaces.Dependencies
	base     *url.URL
	detector *Detector
	tiers    []Tier
}

// NewContentService creates a service with the structured tier first and the HTML tier last
func NewContentService(deps interfaces.Dependencies, cfg Config) (*ContentService, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("invalid content base url %q", cfg.BaseURL)
	}
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}

	s := &ContentService{
		deps:     deps,
		base:     base,
		detector: cfg.Detector,
	}
	if s.detector == nil {
		s.detector = NewDetector()
	}
	s.tiers = []Tier{s.StructuredTier(), s.HTMLTier()}
	return s, nil
}

// WithTiers returns a copy of the service that runs tiers in the given order
func (s *ContentService) WithTiers(tiers ...Tier) *ContentService {
	clone := *s
	clone.tiers = append([]Tier(nil), tiers...)
	return &clone
}

// TierNames returns the configured tier order
func (s *ContentService) TierNames() []string {
	names := make([]string, len(s.tiers))
	for i, t := range s.tiers {
		names[i] = t.Name
	}
	return names
}

// Resolve tries each tier in order. A tier error or a rejected result moves on
// to the next tier; the last tier's error is terminal.
func (s *ContentService) Resolve(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error) {
	if page.IsZero() {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url has not been validated"}
	}
	slug, ok := page.Slug()
	if !ok {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url has no page slug"}
	}
	if s.deps.Fetcher == nil {
		return nil, errors.New("fetcher not configured")
	}

	var (
		attempts []coreerrors.Attempt
		rejected *domain.PageTimestamps
	)

	for _, tier := range s.tiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := tier.Resolve(ctx, page, slug)
		if err != nil {
			attempts = append(attempts, coreerrors.Attempt{Tier: tier.Name, Err: err})
			rejected = nil
			s.observe(tier.Name, "failed")
			s.deps.Logger.Warn("Resolution tier failed", map[string]interface{}{
				"url":   page.String(),
				"tier":  tier.Name,
				"error": err.Error(),
			})
			continue
		}

		codes := timecode.Extract(content.BodyText)
		result := &domain.PageTimestamps{
			URL:        page.String(),
			Title:      content.Title,
			Timestamps: timecode.Strings(codes),
			Source:     tier.Name,
		}
		if result.Title == "" {
			result.Title = slug
		}

		if tier.Accept == nil || tier.Accept(codes) {
			s.observe(tier.Name, "accepted")
			s.deps.Logger.Info("Resolved page timestamps", map[string]interface{}{
				"url":        page.String(),
				"tier":       tier.Name,
				"timestamps": len(codes),
			})
			return result, nil
		}

		attempts = append(attempts, coreerrors.Attempt{Tier: tier.Name, Err: ErrInsufficient})
		rejected = result
		s.observe(tier.Name, "rejected")
		s.deps.Logger.Debug("Resolution tier result not accepted", map[string]interface{}{
			"url":        page.String(),
			"tier":       tier.Name,
			"timestamps": len(codes),
		})
	}

	// The chain ended on a rejection rather than a failure
	if rejected != nil {
		return rejected, nil
	}

	return nil, &coreerrors.ResolutionError{Attempts: attempts}
}

func (s *ContentService) observe(tier, outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveTier(tier, outcome)
	}
}
