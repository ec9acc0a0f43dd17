package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// fakeContentRepo is an in-memory ContentRepository for service tests.
type fakeContentRepo struct {
	shoutouts   map[string]models.Shoutout
	links       map[string]models.SocialLink
	legislation map[string]models.LegislationItem
	profile     *models.Profile
	settings    *models.Settings
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		shoutouts:   make(map[string]models.Shoutout),
		links:       make(map[string]models.SocialLink),
		legislation: make(map[string]models.LegislationItem),
	}
}

func (f *fakeContentRepo) ListShoutouts(_ context.Context, platform string) ([]models.Shoutout, error) {
	var out []models.Shoutout
	for _, s := range f.shoutouts {
		if platform == "" || s.Platform == platform {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) CreateShoutout(_ context.Context, s models.Shoutout) (string, error) {
	s.ID = uuid.NewString()
	f.shoutouts[s.ID] = s
	return s.ID, nil
}

func (f *fakeContentRepo) UpdateShoutout(_ context.Context, s models.Shoutout) error {
	f.shoutouts[s.ID] = s
	return nil
}

func (f *fakeContentRepo) DeleteShoutout(_ context.Context, id string) error {
	delete(f.shoutouts, id)
	return nil
}

func (f *fakeContentRepo) ListLinks(_ context.Context) ([]models.SocialLink, error) {
	var out []models.SocialLink
	for _, l := range f.links {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeContentRepo) CreateLink(_ context.Context, l models.SocialLink) (string, error) {
	l.ID = uuid.NewString()
	f.links[l.ID] = l
	return l.ID, nil
}

func (f *fakeContentRepo) UpdateLink(_ context.Context, l models.SocialLink) error {
	f.links[l.ID] = l
	return nil
}

func (f *fakeContentRepo) DeleteLink(_ context.Context, id string) error {
	delete(f.links, id)
	return nil
}

func (f *fakeContentRepo) GetProfile(_ context.Context) (*models.Profile, error) {
	if f.profile == nil {
		return &models.Profile{}, nil
	}
	return f.profile, nil
}

func (f *fakeContentRepo) SaveProfile(_ context.Context, p models.Profile) error {
	f.profile = &p
	return nil
}

func (f *fakeContentRepo) ListLegislation(_ context.Context) ([]models.LegislationItem, error) {
	var out []models.LegislationItem
	for _, item := range f.legislation {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeContentRepo) CreateLegislation(_ context.Context, item models.LegislationItem) (string, error) {
	item.ID = uuid.NewString()
	f.legislation[item.ID] = item
	return item.ID, nil
}

func (f *fakeContentRepo) UpdateLegislation(_ context.Context, item models.LegislationItem) error {
	f.legislation[item.ID] = item
	return nil
}

func (f *fakeContentRepo) DeleteLegislation(_ context.Context, id string) error {
	delete(f.legislation, id)
	return nil
}

func (f *fakeContentRepo) GetSettings(_ context.Context) (*models.Settings, error) {
	if f.settings == nil {
		def := models.DefaultSettings()
		return &def, nil
	}
	return f.settings, nil
}

func (f *fakeContentRepo) SaveSettings(_ context.Context, s models.Settings) error {
	f.settings = &s
	return nil
}

func TestCreateShoutoutValidation(t *testing.T) {
	svc := &DefaultContentService{Repo: newFakeContentRepo()}
	ctx := context.Background()

	_, err := svc.CreateShoutout(ctx, models.Shoutout{Platform: "myspace", Username: "caleb"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "platform", verr.Field)

	_, err = svc.CreateShoutout(ctx, models.Shoutout{Platform: "tiktok", Username: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)

	id, err := svc.CreateShoutout(ctx, models.Shoutout{Platform: "TikTok", Username: " caleb "})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestListShoutoutsPlatformFilter(t *testing.T) {
	repo := newFakeContentRepo()
	svc := &DefaultContentService{Repo: repo}
	ctx := context.Background()

	_, err := svc.CreateShoutout(ctx, models.Shoutout{Platform: "tiktok", Username: "a"})
	require.NoError(t, err)
	_, err = svc.CreateShoutout(ctx, models.Shoutout{Platform: "youtube", Username: "b"})
	require.NoError(t, err)

	got, err := svc.ListShoutouts(ctx, "YouTube")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Username)

	_, err = svc.ListShoutouts(ctx, "vimeo")
	assert.Error(t, err)
}

func TestCreateLinkValidation(t *testing.T) {
	svc := &DefaultContentService{Repo: newFakeContentRepo()}
	ctx := context.Background()

	cases := []struct {
		name  string
		link  models.SocialLink
		field string
	}{
		{"missing label", models.SocialLink{URL: "https://example.com"}, "label"},
		{"relative url", models.SocialLink{Label: "Site", URL: "/about"}, "url"},
		{"bad scheme", models.SocialLink{Label: "Site", URL: "ftp://example.com"}, "url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLink(ctx, tc.link)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	id, err := svc.CreateLink(ctx, models.SocialLink{Label: "TikTok", URL: "https://tiktok.com/@caleb"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestUpdateRequiresID(t *testing.T) {
	svc := &DefaultContentService{Repo: newFakeContentRepo()}
	ctx := context.Background()

	err := svc.UpdateShoutout(ctx, models.Shoutout{Platform: "tiktok", Username: "caleb"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)

	err = svc.UpdateLink(ctx, models.SocialLink{Label: "Site", URL: "https://example.com"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
}

func TestSaveProfileTrimsUsername(t *testing.T) {
	repo := newFakeContentRepo()
	svc := &DefaultContentService{Repo: repo}
	ctx := context.Background()

	err := svc.SaveProfile(ctx, models.Profile{Username: "  "})
	assert.Error(t, err)

	require.NoError(t, svc.SaveProfile(ctx, models.Profile{Username: " caleb ", Bio: "hi"}))
	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "caleb", got.Username)
}
