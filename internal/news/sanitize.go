package news

import "strings"

// maxTitleLen is the rune cap applied after suffix stripping.
const maxTitleLen = 90

// siteSuffixes are trailing site-name tags some feeds append to titles.
var siteSuffixes = []string{
	" - NTV",
	" - TRT Haber",
	" - BBC Türkçe",
	" - DonanımHaber",
	" - Son Dakika Haberleri",
}

// SanitizeTitle strips residual markup markers and known trailing site
// names, then truncates to maxTitleLen runes with an ellipsis marker.
func SanitizeTitle(title string) string {
	t := strings.TrimSpace(title)
	t = strings.TrimPrefix(t, "<![CDATA[")
	t = strings.TrimSuffix(t, "]]>")
	t = strings.TrimSpace(t)

	for _, suffix := range siteSuffixes {
		if strings.HasSuffix(t, suffix) {
			t = strings.TrimSpace(strings.TrimSuffix(t, suffix))
			break
		}
	}

	if runes := []rune(t); len(runes) > maxTitleLen {
		t = string(runes[:maxTitleLen]) + "..."
	}

	return t
}
