package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/camporahq/campora/internal/identity/entity"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/hash"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  identity:
    otp_ttl_minutes: 10
    login_flow_ttl_minutes: 15
    oauth_state_ttl_minutes: 5
`

type fakeRepoDB struct {
	mu    sync.Mutex
	users map[int64]*entity.User

	createErr error
	getErr    error
	setOTPErr error
}

func newFakeRepoDB(users ...*entity.User) *fakeRepoDB {
	db := &fakeRepoDB{users: map[int64]*entity.User{}}
	for _, u := range users {
		db.users[u.ID] = u
	}
	return db
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepoDB) GetUserByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID != "" && u.GoogleID == googleID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) CreateUser(_ context.Context, in entity.NewUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == in.Email || u.Username == in.Username {
			return goerror.ErrConflict
		}
	}
	f.users[in.ID] = &entity.User{
		ID:         in.ID,
		Email:      in.Email,
		Username:   in.Username,
		Role:       in.Role,
		IsVerified: in.IsVerified,
		GoogleID:   in.GoogleID,
	}
	return nil
}

func (f *fakeRepoDB) SetUserOTP(_ context.Context, userID int64, code string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setOTPErr != nil {
		return f.setOTPErr
	}
	u, ok := f.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.OTP = entity.OTPState{Code: code, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeRepoDB) ClearUserOTP(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.OTP = entity.OTPState{}
	return nil
}

func (f *fakeRepoDB) ConsumeUserOTP(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.OTP = entity.OTPState{}
	u.IsVerified = true
	return nil
}

func (f *fakeRepoDB) LinkGoogleAccount(_ context.Context, userID int64, googleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.GoogleID = googleID
	u.IsVerified = true
	return nil
}

func (f *fakeRepoDB) user(id int64) entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.users[id]
}

type fakeRepoCache struct {
	mu      sync.Mutex
	pending map[string]string
	states  map[string]bool
}

func newFakeRepoCache() *fakeRepoCache {
	return &fakeRepoCache{pending: map[string]string{}, states: map[string]bool{}}
}

func (f *fakeRepoCache) SavePendingLogin(_ context.Context, flowKey, email string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[flowKey] = email
	return nil
}

func (f *fakeRepoCache) GetPendingLogin(_ context.Context, flowKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email, ok := f.pending[flowKey]
	if !ok {
		return "", goerror.ErrNotFound
	}
	return email, nil
}

func (f *fakeRepoCache) DeletePendingLogin(_ context.Context, flowKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, flowKey)
	return nil
}

func (f *fakeRepoCache) SaveOAuthState(_ context.Context, state string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[state] = true
	return nil
}

func (f *fakeRepoCache) TakeOAuthState(_ context.Context, state string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.states[state] {
		return false, nil
	}
	delete(f.states, state)
	return true, nil
}

func (f *fakeRepoCache) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

type sentCode struct {
	email string
	code  string
}

type fakeDelivery struct {
	mu   sync.Mutex
	sent []sentCode
	err  error
}

func (f *fakeDelivery) SendLoginCode(_ context.Context, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentCode{email: email, code: code})
	return nil
}

func (f *fakeDelivery) last() sentCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeSessions struct {
	mu        sync.Mutex
	next      int
	active    map[string]session.Auth
	destroyed []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{active: map[string]session.Auth{}}
}

func (f *fakeSessions) Establish(_ context.Context, auth session.Auth) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	token := "session-" + strconv.Itoa(f.next)
	f.active[token] = auth
	return token, nil
}

func (f *fakeSessions) Current(_ context.Context, token string) (*session.Auth, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	auth, ok := f.active[token]
	if !ok {
		return nil, nil
	}
	return &auth, nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, token)
	f.destroyed = append(f.destroyed, token)
	return nil
}

type fakeMessaging struct {
	mu        sync.Mutex
	published []UserRegisteredEvent
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, msg)
	return nil
}

type fakeFederation struct {
	user *FederatedUser
	err  error
}

func (f *fakeFederation) AuthURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeFederation) ResolveUser(context.Context, string) (*FederatedUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type fakeCodes struct {
	mu    sync.Mutex
	next  int
	codes []string
}

func (f *fakeCodes) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code := f.codes[f.next%len(f.codes)]
	f.next++
	return code, nil
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

type fakeStringID struct {
	mu     sync.Mutex
	n      int
	prefix string
}

func (f *fakeStringID) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return f.prefix + strconv.Itoa(f.n)
}

type fixture struct {
	uc *Usecase

	db       *fakeRepoDB
	cache    *fakeRepoCache
	delivery *fakeDelivery
	sessions *fakeSessions
	msg      *fakeMessaging
	fed      *fakeFederation
	clock    *fakeClock
}

func newFixture(t *testing.T, users ...*entity.User) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)
	t.Cleanup(func() { cfg.Close() }) //nolint:errcheck // test cleanup

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	fx := &fixture{
		db:       newFakeRepoDB(users...),
		cache:    newFakeRepoCache(),
		delivery: &fakeDelivery{},
		sessions: newFakeSessions(),
		msg:      &fakeMessaging{},
		fed:      &fakeFederation{},
		clock:    &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	fx.uc = New(Dependency{
		RepoDB:        fx.db,
		RepoCache:     fx.cache,
		RepoMessaging: fx.msg,
		Delivery:      fx.delivery,
		Federation:    fx.fed,
		Sessions:      fx.sessions,
		Validator:     v,
		Config:        cfg,
		HMAC:          hash.NewHMACSHA256("test-secret"),
		UID:           &fakeNumberID{n: 100},
		OID:           &fakeStringID{prefix: "flow-"},
		Codes:         &fakeCodes{codes: []string{"111111", "222222", "333333"}},
		Clock:         fx.clock,
		Instrument:    instrument.NewNoop(),
	})

	return fx
}

func testUser() *entity.User {
	return &entity.User{
		ID:       7,
		Email:    "camper@example.com",
		Username: "camper",
		Role:     entity.RoleUser,
	}
}

func assertBusinessError(t *testing.T, err error, msg string, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, code, gerr.Code())
}
