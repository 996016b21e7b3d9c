package model

// ConversionKind selects the formula that turns a raw quote into a
// base-currency price.
type ConversionKind string

const (
	KindCurrency    ConversionKind = "currency"
	KindCrypto      ConversionKind = "crypto"
	KindMetalOunce  ConversionKind = "metal_ounce"
	KindMetalPounds ConversionKind = "metal_lbs"
	KindMetalTon    ConversionKind = "metal_ton"
)

type AssetSpec struct {
	Key    string
	Symbol string
	Name   string
	Kind   ConversionKind
}

type NormalizedAsset struct {
	Name      string
	PriceBase float64
	Raw       float64
}

type NewsSource struct {
	Name string
	URL  string
}

type Headline struct {
	Text   string
	Source string
	URL    string
}

type Snapshot struct {
	Timestamp string
	Assets    map[string]NormalizedAsset
	USDRate   float64
	News      Headline
}
