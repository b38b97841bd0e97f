package preferences

import (
	"strings"
	"sync"
)

// categoryAliases folds the spellings the mobile client sends into the
// canonical catalog categories.
var categoryAliases = map[string]string{
	"museum": "museums",
	"cafes":  "food",
	"coffee": "food",
	"parks":  "outdoors",
}

// NormalizeCategory lower-cases a category and resolves known aliases.
func NormalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if canon, ok := categoryAliases[c]; ok {
		return canon
	}
	return c
}

// State is the per-request preference snapshot. It is built once from the
// request's explicit likes and passed by value through the scoring path, so
// concurrent plan calls never observe each other's likes.
type State struct {
	likes map[string]struct{}
}

func NewState(likes []string) State {
	set := make(map[string]struct{}, len(likes))
	for _, l := range likes {
		set[NormalizeCategory(l)] = struct{}{}
	}
	return State{likes: set}
}

func (s State) Likes(category string) bool {
	_, ok := s.likes[NormalizeCategory(category)]
	return ok
}

// RatingBook accumulates feedback ratings per category for the lifetime of
// the process. It is shared across requests, so all access goes through the
// mutex; readers take a Means snapshot rather than holding the lock while
// scoring.
type RatingBook struct {
	mu    sync.RWMutex
	sums  map[string]float64
	count map[string]int
}

func NewRatingBook() *RatingBook {
	return &RatingBook{
		sums:  make(map[string]float64),
		count: make(map[string]int),
	}
}

func (b *RatingBook) Add(category string, rating int) {
	key := NormalizeCategory(category)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sums[key] += float64(rating)
	b.count[key]++
}

// Mean returns the running average rating for a category and whether any
// rating has been recorded.
func (b *RatingBook) Mean(category string) (float64, bool) {
	key := NormalizeCategory(category)
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := b.count[key]
	if n == 0 {
		return 0, false
	}
	return b.sums[key] / float64(n), true
}

// Means copies the current per-category averages. A plan request scores
// against one consistent snapshot even while feedback keeps arriving.
func (b *RatingBook) Means() map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]float64, len(b.count))
	for k, n := range b.count {
		if n > 0 {
			out[k] = b.sums[k] / float64(n)
		}
	}
	return out
}
