package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 5 * time.Second}
	parser.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	return &RSSFetcher{parser: parser}
}

func (f *RSSFetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, Entry{Title: item.Title, Link: item.Link})
	}

	return entries, nil
}
