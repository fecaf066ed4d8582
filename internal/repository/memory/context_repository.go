package memory

import (
	"time"

	"lifemind-be/pkg/dialogue"

	"github.com/patrickmn/go-cache"
)

// ContextRepository keeps the per-session dialogue context between turns.
// The engine itself is stateless; this is the only place conversation state
// lives on the server side.
type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	// Sessions idle for an hour are dropped; expired entries are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ContextRepository{
		cache: c,
	}
}

func (r *ContextRepository) Save(sessionID string, ctx dialogue.Context) {
	r.cache.Set(sessionID, ctx, cache.DefaultExpiration)
}

func (r *ContextRepository) Get(sessionID string) (dialogue.Context, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(dialogue.Context), true
	}
	return dialogue.Context{}, false
}

func (r *ContextRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
