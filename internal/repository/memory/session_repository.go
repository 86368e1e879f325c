package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session is an active refresh session. The refresh token itself is the
// cache key; losing the process invalidates all sessions, which is
// acceptable for this service.
type Session struct {
	RefreshToken string
	UserId       uuid.UUID
	IssuedAt     time.Time
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *Session) {
	r.cache.Set(session.RefreshToken, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(refreshToken string) (*Session, bool) {
	if x, found := r.cache.Get(refreshToken); found {
		return x.(*Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(refreshToken string) {
	r.cache.Delete(refreshToken)
}
