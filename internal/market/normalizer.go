package market

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/emre57yilmaz/finans-bot/internal/model"
	"github.com/emre57yilmaz/finans-bot/pkg/quote"
)

// Unit conversion factors for the metal quote formulas.
const (
	gramsPerTroyOunce = 31.1035
	poundsPerKilogram = 2.20462
	kilogramsPerTon   = 1000
)

// maxConcurrentFetches bounds the per-asset fan-out.
const maxConcurrentFetches = 4

type Normalizer struct {
	source quote.Client
	specs  []model.AssetSpec
}

func NewNormalizer(source quote.Client) *Normalizer {
	return &Normalizer{source: source, specs: Assets}
}

// Collect resolves the exchange rate, fetches every tracked asset and
// converts each raw quote into its base-currency price. It never fails:
// an unavailable rate falls back to defaultRate and an unavailable asset
// degrades to a zero entry without touching its siblings.
func (n *Normalizer) Collect(ctx context.Context) (map[string]model.NormalizedAsset, float64) {
	// The rate must be fixed before any conversion reads it.
	rate := n.resolveRate(ctx)

	results := make([]model.NormalizedAsset, len(n.specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, spec := range n.specs {
		i, spec := i, spec
		g.Go(func() error {
			raw, err := n.source.Quote(gctx, spec.Symbol)
			if err != nil {
				slog.Warn("quote unavailable", "asset", spec.Key, "symbol", spec.Symbol, "error", err)
				results[i] = model.NormalizedAsset{Name: spec.Name}
				return nil
			}

			results[i] = model.NormalizedAsset{
				Name:      spec.Name,
				PriceBase: convert(spec.Kind, raw, rate),
				Raw:       raw,
			}
			return nil
		})
	}
	g.Wait()

	assets := make(map[string]model.NormalizedAsset, len(n.specs))
	for i, spec := range n.specs {
		assets[spec.Key] = results[i]
	}

	return assets, rate
}

func (n *Normalizer) resolveRate(ctx context.Context) float64 {
	rate, err := n.source.Quote(ctx, baseSymbol)
	if err != nil || rate <= 0 {
		slog.Warn("base rate unavailable, using default", "symbol", baseSymbol, "default", defaultRate, "error", err)
		return defaultRate
	}
	return rate
}

// convert applies the formula for the asset's conversion kind. Unknown
// kinds are rejected by ValidateSpecs at startup and cannot reach here.
func convert(kind model.ConversionKind, raw, rate float64) float64 {
	switch kind {
	case model.KindCurrency:
		return raw
	case model.KindCrypto:
		return raw * rate
	case model.KindMetalOunce:
		return (raw / gramsPerTroyOunce) * rate
	case model.KindMetalPounds:
		return (raw * poundsPerKilogram) * rate
	case model.KindMetalTon:
		return (raw * rate) / kilogramsPerTon
	}
	return 0
}

// ValidateSpecs rejects a registry carrying an unknown conversion kind.
// That is a configuration defect and must stop the process at startup,
// not surface per request.
func ValidateSpecs(specs []model.AssetSpec) error {
	for _, spec := range specs {
		switch spec.Kind {
		case model.KindCurrency, model.KindCrypto, model.KindMetalOunce, model.KindMetalPounds, model.KindMetalTon:
		default:
			return fmt.Errorf("asset %s: unknown conversion kind %q", spec.Key, spec.Kind)
		}
	}
	return nil
}
