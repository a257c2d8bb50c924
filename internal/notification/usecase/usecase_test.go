package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/idempotency"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/mail"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  web: https://campora.app
`

type fakeRepoDB struct {
	mu      sync.Mutex
	rows    []entity.Notification
	nextErr error
}

func (f *fakeRepoDB) CreateNotification(_ context.Context, in entity.CreateNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nextErr != nil {
		err := f.nextErr
		f.nextErr = nil
		return err
	}
	f.rows = append(f.rows, entity.Notification{
		ID:     in.ID,
		UserID: in.UserID,
		Kind:   in.Kind,
		Data:   in.Data,
	})
	return nil
}

func (f *fakeRepoDB) ListNotifications(_ context.Context, userID int64, limit, offset int32) ([]entity.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Notification
	for _, n := range f.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	_ = limit
	_ = offset
	return out, nil
}

func (f *fakeRepoDB) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeRepoMail struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (f *fakeRepoMail) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

// fakeIdempotency runs each key once and reports later calls as completed.
type fakeIdempotency struct {
	mu   sync.Mutex
	done map[string]bool
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.mu.Lock()
	if f.done == nil {
		f.done = map[string]bool{}
	}
	if f.done[key] {
		f.mu.Unlock()
		return idempotency.ErrAlreadyCompleted
	}
	f.done[key] = true
	f.mu.Unlock()

	return fn(ctx)
}

type fixture struct {
	uc *Usecase

	db    *fakeRepoDB
	mail  *fakeRepoMail
	idemp *fakeIdempotency
}

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

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)
	t.Cleanup(func() { cfg.Close() }) //nolint:errcheck // test cleanup

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	fx := &fixture{
		db:    &fakeRepoDB{},
		mail:  &fakeRepoMail{},
		idemp: &fakeIdempotency{},
	}

	fx.uc = NewNotification(Dependency{
		RepoDB:      fx.db,
		RepoMail:    fx.mail,
		Idempotency: fx.idemp,
		Config:      cfg,
		UID:         &fakeNumberID{},
		Validator:   v,
		Instrument:  instrument.NewNoop(),
	})

	return fx
}

func TestConsumeUserRegistered(t *testing.T) {
	input := ConsumeUserRegisteredInput{
		UserID:   7,
		Email:    "camper@example.com",
		Username: "camper",
	}

	t.Run("CreatesWelcomeAndEmails", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.ConsumeUserRegistered(context.Background(), input)

		require.NoError(t, err)
		require.Equal(t, 1, fx.db.count())
		assert.Equal(t, entity.KindWelcome, fx.db.rows[0].Kind)
		assert.Equal(t, int64(7), fx.db.rows[0].UserID)

		require.Len(t, fx.mail.sent, 1)
		assert.Equal(t, []string{"camper@example.com"}, fx.mail.sent[0].To)
		assert.Contains(t, fx.mail.sent[0].TextBody, "https://campora.app")
	})

	t.Run("DuplicateDropped", func(t *testing.T) {
		fx := newFixture(t)

		require.NoError(t, fx.uc.ConsumeUserRegistered(context.Background(), input))
		require.NoError(t, fx.uc.ConsumeUserRegistered(context.Background(), input))

		assert.Equal(t, 1, fx.db.count())
		assert.Len(t, fx.mail.sent, 1)
	})

	t.Run("InvalidPayloadIgnored", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{})

		require.NoError(t, err, "malformed messages are dropped, not retried")
		assert.Zero(t, fx.db.count())
	})
}

func TestConsumeReviewCreated(t *testing.T) {
	input := ConsumeReviewCreatedInput{
		ReviewID:       55,
		CampgroundID:   9,
		CampgroundName: "Pine Hollow",
		OwnerID:        1,
		AuthorID:       2,
		AuthorName:     "reviewer",
		Rating:         4,
	}

	t.Run("NotifiesOwner", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.ConsumeReviewCreated(context.Background(), input)

		require.NoError(t, err)
		require.Equal(t, 1, fx.db.count())
		assert.Equal(t, entity.KindReviewReceived, fx.db.rows[0].Kind)
		assert.Equal(t, int64(1), fx.db.rows[0].UserID)
		assert.Equal(t, "Pine Hollow", fx.db.rows[0].Data["campground_name"])
	})

	t.Run("OwnReviewSkipped", func(t *testing.T) {
		fx := newFixture(t)
		own := input
		own.AuthorID = own.OwnerID

		err := fx.uc.ConsumeReviewCreated(context.Background(), own)

		require.NoError(t, err)
		assert.Zero(t, fx.db.count())
	})

	t.Run("DuplicateDropped", func(t *testing.T) {
		fx := newFixture(t)

		require.NoError(t, fx.uc.ConsumeReviewCreated(context.Background(), input))
		require.NoError(t, fx.uc.ConsumeReviewCreated(context.Background(), input))

		assert.Equal(t, 1, fx.db.count())
	})
}

func TestList(t *testing.T) {
	t.Run("NotAuthenticated", func(t *testing.T) {
		fx := newFixture(t)

		items, err := fx.uc.List(context.Background(), ListInput{})

		require.Nil(t, items)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("OnlyOwnRows", func(t *testing.T) {
		fx := newFixture(t)
		require.NoError(t, fx.uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID: 7, Email: "camper@example.com", Username: "camper",
		}))
		require.NoError(t, fx.uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID: 8, Email: "other@example.com", Username: "other",
		}))

		ctx := session.SetAuth(context.Background(), &session.Auth{UserID: 7, Username: "camper", Role: "user"})
		items, err := fx.uc.List(ctx, ListInput{})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(7), items[0].UserID)
	})
}
