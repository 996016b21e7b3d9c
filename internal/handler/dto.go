package handler

import "github.com/emre57yilmaz/finans-bot/internal/model"

type AssetResponse struct {
	Name        string  `json:"name"`
	PriceBaseTL float64 `json:"price_base_tl"`
	Raw         float64 `json:"raw"`
}

type NewsResponse struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

type SnapshotResponse struct {
	Timestamp string                   `json:"timestamp"`
	Assets    map[string]AssetResponse `json:"assets"`
	USDRate   float64                  `json:"usd_rate"`
	News      NewsResponse             `json:"news"`
}

func NewSnapshotResponse(snap model.Snapshot) SnapshotResponse {
	assets := make(map[string]AssetResponse, len(snap.Assets))
	for key, a := range snap.Assets {
		assets[key] = AssetResponse{
			Name:        a.Name,
			PriceBaseTL: a.PriceBase,
			Raw:         a.Raw,
		}
	}

	return SnapshotResponse{
		Timestamp: snap.Timestamp,
		Assets:    assets,
		USDRate:   snap.USDRate,
		News: NewsResponse{
			Headline: snap.News.Text,
			Source:   snap.News.Source,
			URL:      snap.News.URL,
		},
	}
}
