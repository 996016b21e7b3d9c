package news

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/emre57yilmaz/finans-bot/internal/model"
	"github.com/emre57yilmaz/finans-bot/pkg/feed"
)

// maxProbes caps how many shuffled sources one selection may try.
// Probing the whole pool on every request would make worst-case latency
// unacceptable, so the search stops here even if a later source works.
const maxProbes = 5

// Sentinel is returned when no probed source yields an entry, so Pick is
// total and callers never branch on an error.
var Sentinel = model.Headline{
	Text:   "markets are being tracked (no source responded)",
	Source: "SYSTEM",
	URL:    "https://www.google.com/finance",
}

type Selector struct {
	fetcher feed.Fetcher
	sources []model.NewsSource
	shuffle func([]model.NewsSource)
}

func NewSelector(fetcher feed.Fetcher) *Selector {
	return &Selector{
		fetcher: fetcher,
		sources: Sources,
		shuffle: func(s []model.NewsSource) {
			rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		},
	}
}

// Pick probes a shuffled, bounded prefix of the source pool and returns
// the first headline it finds. A source that errors or comes back empty
// is skipped, never retried. An entry with an empty title still counts
// as a hit.
func (s *Selector) Pick(ctx context.Context) model.Headline {
	candidates := make([]model.NewsSource, len(s.sources))
	copy(candidates, s.sources)
	s.shuffle(candidates)

	if len(candidates) > maxProbes {
		candidates = candidates[:maxProbes]
	}

	for _, source := range candidates {
		entries, err := s.fetcher.Fetch(ctx, source.URL)
		if err != nil {
			slog.Warn("news source unavailable", "source", source.Name, "error", err)
			continue
		}
		if len(entries) == 0 {
			slog.Info("news source empty", "source", source.Name)
			continue
		}

		entry := entries[0]
		return model.Headline{
			Text:   SanitizeTitle(entry.Title),
			Source: source.Name,
			URL:    entry.Link,
		}
	}

	slog.Warn("no news source responded, returning sentinel headline")
	return Sentinel
}
