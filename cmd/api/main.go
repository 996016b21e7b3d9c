package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/emre57yilmaz/finans-bot/internal/handler"
	"github.com/emre57yilmaz/finans-bot/internal/market"
	"github.com/emre57yilmaz/finans-bot/internal/news"
	"github.com/emre57yilmaz/finans-bot/internal/snapshot"
	"github.com/emre57yilmaz/finans-bot/pkg/feed"
	"github.com/emre57yilmaz/finans-bot/pkg/quote"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := market.ValidateSpecs(market.Assets); err != nil {
		log.Fatalf("invalid asset configuration: %v", err)
	}

	normalizer := market.NewNormalizer(quote.NewYahooClient())
	selector := news.NewSelector(feed.NewRSSFetcher())
	snapshotHandler := handler.NewSnapshotHandler(snapshot.NewService(normalizer, selector))

	r := gin.Default()

	// Public read-only data feed: any origin may read it.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/full_data", snapshotHandler.GetFullData)
	r.GET("/health", snapshotHandler.GetHealth)

	host := os.Getenv("HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	err := r.Run(host + ":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
