package domain

// PreviewMeta is derived per request from an Article and never persisted.
type PreviewMeta struct {
	Title         string
	Description   string
	Image         string
	URL           string // canonical, crawler-friendly share URL
	AppURL        string // hash-routed single page app URL
	PublishedTime string
	SiteName      string
}
