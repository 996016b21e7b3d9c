package market

import "github.com/emre57yilmaz/finans-bot/internal/model"

// baseSymbol quotes the TL price of one USD; its value is the conversion
// rate shared by every asset in a snapshot.
const baseSymbol = "TRY=X"

// defaultRate is used when the base rate cannot be fetched.
const defaultRate = 34.50

// Assets is the tracked asset registry, in response order.
// Read-only after process start.
var Assets = []model.AssetSpec{
	{Key: "USD", Symbol: "TRY=X", Name: "Dolar", Kind: model.KindCurrency},
	{Key: "EUR", Symbol: "EURTRY=X", Name: "Euro", Kind: model.KindCurrency},
	{Key: "BTC", Symbol: "BTC-USD", Name: "Bitcoin", Kind: model.KindCrypto},
	{Key: "ETH", Symbol: "ETH-USD", Name: "Ethereum", Kind: model.KindCrypto},
	{Key: "GOLD", Symbol: "GC=F", Name: "Altın", Kind: model.KindMetalOunce},
	{Key: "SILVER", Symbol: "SI=F", Name: "Gümüş", Kind: model.KindMetalOunce},
	{Key: "PLATINUM", Symbol: "PL=F", Name: "Platin", Kind: model.KindMetalOunce},
	{Key: "COPPER", Symbol: "HG=F", Name: "Bakır", Kind: model.KindMetalPounds},
	{Key: "ALUMINUM", Symbol: "ALI=F", Name: "Alüminyum", Kind: model.KindMetalTon},
}
