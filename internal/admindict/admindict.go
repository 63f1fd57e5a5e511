// Package admindict stores operator-added lexicon words in Redis,
// outside the dictionary file, so they can be added between file-based
// reloads without a redeploy. It is a source of extra (canonical,
// frequency) pairs merged into the build — each process still builds and
// owns its own Snapshot, so this does not reintroduce cross-process
// sharing of the index itself.
package admindict

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"corrector/pkg/lexicon"
)

// Frequency is the fixed frequency assigned to every admin word, high
// enough that it outranks dictionary-file candidates of lower frequency at
// the same edit distance. A file entry with a higher frequency still ranks
// above it.
const Frequency uint64 = 1_000_000_000

// Store wraps a Redis client to manage the admin word set.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by client, using key as the Redis set key.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = "corrector:admin_words"
	}
	return &Store{client: client, key: key}
}

// Add inserts word into the admin word set.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes word from the admin word set.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// Words returns every word currently in the admin word set.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Entries returns the admin word set projected to lexicon.RawEntry pairs
// at the fixed admin Frequency, ready to merge into a lexicon.Build call.
func (s *Store) Entries(ctx context.Context) ([]lexicon.RawEntry, error) {
	words, err := s.Words(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]lexicon.RawEntry, 0, len(words))
	freq := strconv.FormatUint(Frequency, 10)
	for _, w := range words {
		out = append(out, lexicon.RawEntry{Canonical: w, FrequencyRaw: freq})
	}
	return out, nil
}
