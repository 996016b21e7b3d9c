package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/emre57yilmaz/finans-bot/internal/handler"
	"github.com/emre57yilmaz/finans-bot/internal/market"
	"github.com/emre57yilmaz/finans-bot/internal/news"
	"github.com/emre57yilmaz/finans-bot/internal/snapshot"
	"github.com/emre57yilmaz/finans-bot/pkg/feed"
	"github.com/emre57yilmaz/finans-bot/pkg/quote"

	"github.com/joho/godotenv"
)

// One-shot variant of the API: build a single snapshot and print it to
// stdout in the wire schema. Logs go to stderr so the output stays pipeable.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := market.ValidateSpecs(market.Assets); err != nil {
		log.Fatalf("invalid asset configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	service := snapshot.NewService(
		market.NewNormalizer(quote.NewYahooClient()),
		news.NewSelector(feed.NewRSSFetcher()),
	)

	snap := service.Build(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(handler.NewSnapshotResponse(snap)); err != nil {
		log.Fatalf("error encoding snapshot: %v", err)
	}
}
