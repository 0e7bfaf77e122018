package bot

import "strings"

// Signatures of link-preview crawlers operated by social platforms.
var defaultSignatures = []string{
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"slackbot",
	"discordbot",
	"google-structured-data-testing-tool",
}

type Detector struct {
	signatures []string
}

func NewDetector(signatures ...string) *Detector {
	d := &Detector{signatures: make([]string, 0, len(signatures))}
	for _, s := range signatures {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			d.signatures = append(d.signatures, s)
		}
	}
	return d
}

func Default() *Detector {
	return NewDetector(defaultSignatures...)
}

// IsBot reports whether the user agent belongs to a known crawler.
// Anything not on the list, including an empty agent, is treated as human.
func (d *Detector) IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, s := range d.signatures {
		if strings.Contains(ua, s) {
			return true
		}
	}
	return false
}
