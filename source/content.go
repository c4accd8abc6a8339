package source

// Content is what a content resolver hands over for one watch target.
// Only WatchURL and TrailerURL take part in playback; both are opaque strings.
type Content struct {
	WatchURL   string `json:"watch_url"`
	TrailerURL string `json:"trailer_url"`
	PosterURL  string `json:"poster_url"`
	Title      string `json:"title"`
	// HTTP headers forwarded to the direct engine when it fetches the stream.
	Headers map[string]string `json:"headers"`
}

// String returns the title, or the playable URL when untitled.
func (c *Content) String() string {
	if c.Title != "" {
		return c.Title
	}
	if c.WatchURL != "" {
		return c.WatchURL
	}
	return c.TrailerURL
}
