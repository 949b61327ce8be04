// Package identity establishes exactly one user identity per session before
// any gallery data is touched. Sign-in order: pre-supplied token, then
// anonymous, then a degraded local identity that is never persisted.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iaparraguez/Pagina-Fotos/logger"
	"github.com/iaparraguez/Pagina-Fotos/models"
	"github.com/iaparraguez/Pagina-Fotos/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProviderToken     = "token"
	ProviderAnonymous = "anonymous"
	ProviderLocal     = "local" // degraded fallback, not persisted
)

// User is the current session identity. A zero User means signed out.
type User struct {
	ID       string
	Provider string
}

type ChangeFunc func(User)

type Provider struct {
	db     *gorm.DB
	secret []byte

	mu        sync.Mutex
	current   User
	callbacks map[uint64]ChangeFunc
	nextID    uint64

	ready     chan struct{}
	readyOnce sync.Once
}

func New(db *gorm.DB, secret string) *Provider {
	return &Provider{
		db:        db,
		secret:    []byte(secret),
		callbacks: make(map[uint64]ChangeFunc),
		ready:     make(chan struct{}),
	}
}

// Ready is closed once an identity has been established, including the
// degraded local one. Data subscriptions must wait on it.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

func (p *Provider) Current() User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Provider) UserID() string {
	return p.Current().ID
}

// OnChange registers a callback invoked on every identity transition,
// including sign-out. The returned cancel func is idempotent.
func (p *Provider) OnChange(fn ChangeFunc) (cancel func()) {
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.callbacks[id] = fn
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.callbacks, id)
		p.mu.Unlock()
	}
}

// Bootstrap establishes the session identity. It never fails: both sign-in
// paths falling over leaves the session on a random local identity so the
// gallery stays usable unauthenticated. Ready fires exactly once.
func (p *Provider) Bootstrap(ctx context.Context, token string) User {
	if token != "" {
		user, err := p.SignInWithToken(ctx, token)
		if err == nil {
			return user
		}
		logger.L.Warnw("token sign-in failed, trying anonymous", "err", err)
	}
	user, err := p.SignInAnonymously(ctx)
	if err == nil {
		return user
	}
	logger.L.Warnw("anonymous sign-in failed, using local identity", "err", err)

	local := User{ID: "local-" + utils.Rand8BytesToBase62(), Provider: ProviderLocal}
	p.setCurrent(local)
	return local
}

// SignInWithToken verifies an HS256 token and signs in as its subject.
func (p *Provider) SignInWithToken(ctx context.Context, token string) (User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return User{}, fmt.Errorf("identity: parse token: %w", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return User{}, errors.New("identity: token has no subject")
	}
	if err := p.persist(ctx, sub, ProviderToken); err != nil {
		return User{}, err
	}
	user := User{ID: sub, Provider: ProviderToken}
	p.setCurrent(user)
	return user, nil
}

// SignInAnonymously creates and persists a fresh anonymous identity.
func (p *Provider) SignInAnonymously(ctx context.Context) (User, error) {
	id := uuid.NewString()
	if err := p.persist(ctx, id, ProviderAnonymous); err != nil {
		return User{}, err
	}
	user := User{ID: id, Provider: ProviderAnonymous}
	p.setCurrent(user)
	return user, nil
}

// SignOut clears the current identity. Ready stays closed: the session keeps
// going, just without a persisted user.
func (p *Provider) SignOut() {
	p.setCurrent(User{})
}

func (p *Provider) persist(ctx context.Context, id, provider string) error {
	row := models.Identity{ID: id, Provider: provider, CreatedAt: time.Now().Unix()}
	if err := p.db.WithContext(ctx).Where(models.Identity{ID: id}).FirstOrCreate(&row).Error; err != nil {
		return fmt.Errorf("identity: persist %s: %w", provider, err)
	}
	return nil
}

func (p *Provider) setCurrent(user User) {
	p.mu.Lock()
	p.current = user
	callbacks := make([]ChangeFunc, 0, len(p.callbacks))
	for _, fn := range p.callbacks {
		callbacks = append(callbacks, fn)
	}
	p.mu.Unlock()

	if user.ID != "" {
		p.readyOnce.Do(func() { close(p.ready) })
	}
	for _, fn := range callbacks {
		fn(user)
	}
}
