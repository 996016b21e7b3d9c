package snapshot

import (
	"context"
	"time"

	"github.com/emre57yilmaz/finans-bot/internal/model"
)

type MarketCollector interface {
	Collect(ctx context.Context) (map[string]model.NormalizedAsset, float64)
}

type HeadlinePicker interface {
	Pick(ctx context.Context) model.Headline
}

type Service struct {
	market MarketCollector
	news   HeadlinePicker
}

func NewService(market MarketCollector, news HeadlinePicker) *Service {
	return &Service{market: market, news: news}
}

// Build assembles one snapshot from fresh fetches. Nothing is retained
// between calls and nothing can fail: both collaborators degrade to
// best-effort values on their own.
func (s *Service) Build(ctx context.Context) model.Snapshot {
	assets, rate := s.market.Collect(ctx)

	return model.Snapshot{
		Timestamp: time.Now().Format("15:04"),
		Assets:    assets,
		USDRate:   rate,
		News:      s.news.Pick(ctx),
	}
}
