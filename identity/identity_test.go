package identity

import (
	"context"
	"testing"
	"time"

	"github.com/iaparraguez/Pagina-Fotos/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, db.AutoMigrate(&models.Identity{}))
	}
	return db
}

func signToken(t *testing.T, subject string, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).
		SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func assertReady(t *testing.T, p *Provider) {
	t.Helper()
	select {
	case <-p.Ready():
	case <-time.After(time.Second):
		t.Fatal("identity never became ready")
	}
}

func TestBootstrapAnonymous(t *testing.T) {
	db := newTestDB(t, true)
	p := New(db, testSecret)

	user := p.Bootstrap(context.Background(), "")
	assert.Equal(t, ProviderAnonymous, user.Provider)
	assert.NotEmpty(t, user.ID)
	assertReady(t, p)
	assert.Equal(t, user, p.Current())

	// The anonymous identity is persisted.
	var row models.Identity
	require.NoError(t, db.First(&row, "id = ?", user.ID).Error)
	assert.Equal(t, ProviderAnonymous, row.Provider)
}

func TestBootstrapWithToken(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)

	user := p.Bootstrap(context.Background(), signToken(t, "user-42", testSecret))
	assert.Equal(t, ProviderToken, user.Provider)
	assert.Equal(t, "user-42", user.ID)
	assertReady(t, p)
}

func TestBootstrapBadTokenFallsBackToAnonymous(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)

	user := p.Bootstrap(context.Background(), signToken(t, "user-42", "wrong-secret"))
	assert.Equal(t, ProviderAnonymous, user.Provider)
	assertReady(t, p)
}

func TestBootstrapDegradedLocalIdentity(t *testing.T) {
	// No migration: every persist fails, the session still gets an identity.
	p := New(newTestDB(t, false), testSecret)

	user := p.Bootstrap(context.Background(), "")
	assert.Equal(t, ProviderLocal, user.Provider)
	assert.Contains(t, user.ID, "local-")
	assertReady(t, p)
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)
	token, err := jwt.New(jwt.SigningMethodHS256).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = p.SignInWithToken(context.Background(), token)
	assert.Error(t, err)
}

func TestReadyFiresOnce(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)

	transitions := 0
	cancel := p.OnChange(func(User) { transitions++ })
	defer cancel()

	p.Bootstrap(context.Background(), "")
	assertReady(t, p)
	_, err := p.SignInAnonymously(context.Background())
	require.NoError(t, err)

	// Ready stayed closed across the second sign-in; both transitions seen.
	assertReady(t, p)
	assert.Equal(t, 2, transitions)
}

func TestSignOutNotifiesAndKeepsReady(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)
	p.Bootstrap(context.Background(), "")

	var last User
	cancel := p.OnChange(func(u User) { last = u })
	defer cancel()

	p.SignOut()
	assert.Equal(t, User{}, last)
	assert.Empty(t, p.UserID())
	assertReady(t, p)
}

func TestOnChangeCancelIsIdempotent(t *testing.T) {
	p := New(newTestDB(t, true), testSecret)

	calls := 0
	cancel := p.OnChange(func(User) { calls++ })
	cancel()
	cancel()

	p.Bootstrap(context.Background(), "")
	assert.Zero(t, calls)
}
