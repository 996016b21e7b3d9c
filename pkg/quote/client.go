package quote

import "context"

// Client fetches the current market price for a ticker-like symbol.
// An error means the quote is unavailable; callers decide how to degrade.
type Client interface {
	Quote(ctx context.Context, symbol string) (float64, error)
}
