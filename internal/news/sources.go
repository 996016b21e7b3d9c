package news

import "github.com/emre57yilmaz/finans-bot/internal/model"

// Sources is the candidate feed pool. Order at rest is arbitrary; the
// selector shuffles it per call. Read-only after process start.
var Sources = []model.NewsSource{
	{Name: "TRT Haber", URL: "https://www.trthaber.com/xml_mobile.php?tur=xml_genel&kategori=ekonomi"},
	{Name: "BBC Türkçe", URL: "https://feeds.bbci.co.uk/turkce/rss.xml"},
	{Name: "NTV", URL: "https://www.ntv.com.tr/ekonomi.rss"},
	{Name: "DonanımHaber", URL: "https://www.donanimhaber.com/rss/tum/"},
}
