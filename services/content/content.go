package content

import (
	"context"
	"net/url"
	"strings"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

var knownPlatforms = map[string]bool{
	"tiktok":    true,
	"instagram": true,
	"youtube":   true,
}

// ListShoutouts returns shoutouts in display order, optionally filtered
// by platform.
func (s *DefaultContentService) ListShoutouts(ctx context.Context, platform string) ([]models.Shoutout, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform != "" && !knownPlatforms[platform] {
		return nil, ValidationError{Field: "platform", Detail: "unknown platform " + platform}
	}
	return s.Repo.ListShoutouts(ctx, platform)
}

func (s *DefaultContentService) CreateShoutout(ctx context.Context, sh models.Shoutout) (string, error) {
	if err := validateShoutout(&sh); err != nil {
		return "", err
	}
	return s.Repo.CreateShoutout(ctx, sh)
}

func (s *DefaultContentService) UpdateShoutout(ctx context.Context, sh models.Shoutout) error {
	if sh.ID == "" {
		return ValidationError{Field: "id", Detail: "missing shoutout id"}
	}
	if err := validateShoutout(&sh); err != nil {
		return err
	}
	return s.Repo.UpdateShoutout(ctx, sh)
}

func (s *DefaultContentService) DeleteShoutout(ctx context.Context, id string) error {
	return s.Repo.DeleteShoutout(ctx, id)
}

func validateShoutout(sh *models.Shoutout) error {
	sh.Platform = strings.ToLower(strings.TrimSpace(sh.Platform))
	sh.Username = strings.TrimSpace(sh.Username)
	if !knownPlatforms[sh.Platform] {
		return ValidationError{Field: "platform", Detail: "unknown platform " + sh.Platform}
	}
	if sh.Username == "" {
		return ValidationError{Field: "username", Detail: "username is required"}
	}
	return nil
}

// ListLinks returns the public links list in display order.
func (s *DefaultContentService) ListLinks(ctx context.Context) ([]models.SocialLink, error) {
	return s.Repo.ListLinks(ctx)
}

func (s *DefaultContentService) CreateLink(ctx context.Context, l models.SocialLink) (string, error) {
	if err := validateLink(&l); err != nil {
		return "", err
	}
	return s.Repo.CreateLink(ctx, l)
}

func (s *DefaultContentService) UpdateLink(ctx context.Context, l models.SocialLink) error {
	if l.ID == "" {
		return ValidationError{Field: "id", Detail: "missing link id"}
	}
	if err := validateLink(&l); err != nil {
		return err
	}
	return s.Repo.UpdateLink(ctx, l)
}

func (s *DefaultContentService) DeleteLink(ctx context.Context, id string) error {
	return s.Repo.DeleteLink(ctx, id)
}

func validateLink(l *models.SocialLink) error {
	l.Label = strings.TrimSpace(l.Label)
	l.URL = strings.TrimSpace(l.URL)
	if l.Label == "" {
		return ValidationError{Field: "label", Detail: "label is required"}
	}
	u, err := url.Parse(l.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ValidationError{Field: "url", Detail: "must be an absolute http(s) URL"}
	}
	return nil
}

// GetProfile returns the owner profile card.
func (s *DefaultContentService) GetProfile(ctx context.Context) (*models.Profile, error) {
	return s.Repo.GetProfile(ctx)
}

func (s *DefaultContentService) SaveProfile(ctx context.Context, p models.Profile) error {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return ValidationError{Field: "username", Detail: "username is required"}
	}
	return s.Repo.SaveProfile(ctx, p)
}

// ListLegislation returns tracked bills, most recently updated first.
func (s *DefaultContentService) ListLegislation(ctx context.Context) ([]models.LegislationItem, error) {
	return s.Repo.ListLegislation(ctx)
}

func (s *DefaultContentService) CreateLegislation(ctx context.Context, item models.LegislationItem) (string, error) {
	if err := validateLegislation(&item); err != nil {
		return "", err
	}
	return s.Repo.CreateLegislation(ctx, item)
}

func (s *DefaultContentService) UpdateLegislation(ctx context.Context, item models.LegislationItem) error {
	if item.ID == "" {
		return ValidationError{Field: "id", Detail: "missing legislation id"}
	}
	if err := validateLegislation(&item); err != nil {
		return err
	}
	return s.Repo.UpdateLegislation(ctx, item)
}

func (s *DefaultContentService) DeleteLegislation(ctx context.Context, id string) error {
	return s.Repo.DeleteLegislation(ctx, id)
}

func validateLegislation(item *models.LegislationItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return ValidationError{Field: "title", Detail: "title is required"}
	}
	return nil
}
