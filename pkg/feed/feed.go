package feed

import "context"

// Entry is one feed item, in the order the feed published it.
type Entry struct {
	Title string
	Link  string
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}
