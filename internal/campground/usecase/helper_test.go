package usecase

import (
	"context"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/storage"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  campground:
    image_bucket: campora-images
    image_base_url: https://img.campora.app
    image_max_size_bytes: 64
`

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

type fakeRepoDB struct {
	mu          sync.Mutex
	campgrounds map[int64]*entity.Campground
	reviews     map[int64]*entity.Review

	lookups int
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		campgrounds: map[int64]*entity.Campground{},
		reviews:     map[int64]*entity.Review{},
	}
}

func (f *fakeRepoDB) GetCampgroundByID(_ context.Context, id int64) (*entity.Campground, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	cg, ok := f.campgrounds[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	clone := *cg
	return &clone, nil
}

func (f *fakeRepoDB) ListCampgrounds(_ context.Context, filter entity.ListFilter) ([]entity.Campground, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Campground
	for _, cg := range f.campgrounds {
		out = append(out, *cg)
	}
	_ = filter
	return out, int64(len(f.campgrounds)), nil
}

func (f *fakeRepoDB) ListReviewsByCampground(_ context.Context, campgroundID int64) ([]entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Review
	for _, r := range f.reviews {
		if r.CampgroundID == campgroundID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepoDB) GetReviewByID(_ context.Context, id, campgroundID int64) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	r, ok := f.reviews[id]
	if !ok || r.CampgroundID != campgroundID {
		return nil, goerror.ErrNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRepoDB) CreateCampground(_ context.Context, in entity.NewCampground) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.campgrounds[in.ID] = &entity.Campground{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		AuthorID:    in.AuthorID,
		CreatedAt:   time.Now(),
	}
	return nil
}

func (f *fakeRepoDB) UpdateCampground(_ context.Context, in entity.UpdateCampground) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cg, ok := f.campgrounds[in.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	cg.Title = in.Title
	cg.Description = in.Description
	cg.Location = in.Location
	cg.Price = in.Price
	return nil
}

func (f *fakeRepoDB) UpdateCampgroundImage(_ context.Context, id int64, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cg, ok := f.campgrounds[id]
	if !ok {
		return goerror.ErrNotFound
	}
	cg.ImageURL = imageURL
	return nil
}

func (f *fakeRepoDB) DeleteCampground(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.campgrounds, id)
	return nil
}

func (f *fakeRepoDB) CreateReview(_ context.Context, in entity.NewReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[in.ID] = &entity.Review{
		ID:           in.ID,
		CampgroundID: in.CampgroundID,
		AuthorID:     in.AuthorID,
		Rating:       in.Rating,
		Body:         in.Body,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (f *fakeRepoDB) DeleteReview(_ context.Context, id, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reviews, id)
	return nil
}

func (f *fakeRepoDB) campground(id int64) *entity.Campground {
	f.mu.Lock()
	defer f.mu.Unlock()
	cg, ok := f.campgrounds[id]
	if !ok {
		return nil
	}
	clone := *cg
	return &clone
}

func (f *fakeRepoDB) review(id int64) *entity.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reviews[id]
	if !ok {
		return nil
	}
	clone := *r
	return &clone
}

func (f *fakeRepoDB) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

type fakeMessaging struct {
	mu        sync.Mutex
	published []ReviewCreatedEvent
}

func (f *fakeMessaging) PublishReviewCreated(_ context.Context, msg ReviewCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, msg)
	return nil
}

type putCall struct {
	bucket string
	key    string
	size   int64
}

type fakeStorage struct {
	mu   sync.Mutex
	puts []putCall
}

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, _ storage.PutOptions) (storage.ObjectInfo, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, putCall{bucket: bucket, key: key, size: n})
	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: n}, nil
}

func (f *fakeStorage) GetObject(context.Context, string, string, storage.GetOptions) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) StatObject(context.Context, string, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) DeleteObject(context.Context, string, string) error { return nil }

func (f *fakeStorage) ListObjects(context.Context, string, string, storage.ListOptions) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeStorage) PresignGet(context.Context, string, string, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeStorage) PresignPut(context.Context, string, string, storage.PutOptions, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeStorage) Close() error { return nil }

type fakeNumberID struct {
	mu sync.Mutex
	n  int64
}

func (f *fakeNumberID) Generate() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return f.n
}

type fakeStringID struct {
	mu sync.Mutex
	n  int
}

func (f *fakeStringID) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return "uuid-" + strconv.Itoa(f.n)
}

type fixture struct {
	uc *Usecase

	db      *fakeRepoDB
	msg     *fakeMessaging
	storage *fakeStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)
	t.Cleanup(func() { cfg.Close() }) //nolint:errcheck // test cleanup

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	m, err := model.NewModelFromString(testRBACModel)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = enforcer.AddPolicy("moderator", "*", "moderate")
	require.NoError(t, err)

	fx := &fixture{
		db:      newFakeRepoDB(),
		msg:     &fakeMessaging{},
		storage: &fakeStorage{},
	}

	fx.uc = New(Dependency{
		RepoDB:        fx.db,
		RepoMessaging: fx.msg,
		Storage:       fx.storage,
		Validator:     v,
		Config:        cfg,
		UID:           &fakeNumberID{n: 1000},
		UUID:          &fakeStringID{},
		Enforcer:      enforcer,
		Instrument:    instrument.NewNoop(),
	})

	return fx
}

func (fx *fixture) seedCampground(t *testing.T, authorID int64) *entity.Campground {
	t.Helper()

	ctx := asUser(authorID, "author", "user")
	out, err := fx.uc.Create(ctx, CreateInput{
		Title:       "Pine Hollow",
		Description: "Quiet spot by the creek",
		Location:    "Lost Valley",
		Price:       25,
	})
	require.NoError(t, err)

	return fx.db.campground(out.ID)
}

func (fx *fixture) seedReview(t *testing.T, campgroundID, authorID int64) *entity.Review {
	t.Helper()

	ctx := asUser(authorID, "reviewer", "user")
	out, err := fx.uc.ReviewCreate(ctx, ReviewCreateInput{
		CampgroundID: campgroundID,
		Rating:       4,
		Body:         "Great weekend",
	})
	require.NoError(t, err)

	return fx.db.review(out.ID)
}

func asUser(id int64, username, role string) context.Context {
	return session.SetAuth(context.Background(), &session.Auth{UserID: id, Username: username, Role: role})
}

func assertBusinessError(t *testing.T, err error, msg string, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, code, gerr.Code())
}
