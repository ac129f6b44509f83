package v1

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/runner"
)

const downloadTTL = 10 * time.Minute

type download struct {
	result    *runner.Result
	expiresAt time.Time
}

// downloadStore one-shot tokens for results of streamed runs
type downloadStore struct {
	mu    sync.Mutex
	items map[string]download
	// onExpire releases the result behind a token nobody redeemed
	onExpire func(*runner.Result)
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]download),
	}
}

func (s *downloadStore) put(result *runner.Result, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.purgeExpiredLocked(now)

	token := newRandomToken(24)
	s.items[token] = download{
		result:    result,
		expiresAt: now.Add(ttl),
	}
	return token
}

// take returns the result of token and forgets the token.
func (s *downloadStore) take(token string) (*runner.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return nil, false
	}
	delete(s.items, token)
	return v.result, true
}

func (s *downloadStore) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
			if s.onExpire != nil {
				s.onExpire(v.result)
			}
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
