package source

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/anisan-cli/reel/key"
	"github.com/anisan-cli/reel/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// DefaultEmbedPatterns match the host and path signatures of known embedded stream players.
var DefaultEmbedPatterns = []string{
	`^https?://(www\.)?youtube(-nocookie)?\.com/embed/`,
	`^https?://player\.vimeo\.com/video/`,
	`^https?://(www\.)?dailymotion\.com/embed/`,
	`^https?://embed\.[^/]+/stream/`,
	`^https?://[^/]+/embed/`,
}

// Classifier maps watch URLs to backend kinds. It is safe for concurrent use.
type Classifier struct {
	patterns []*regexp.Regexp
}

// NewClassifier compiles the given embed patterns case-insensitively.
func NewClassifier(patterns ...string) (*Classifier, error) {
	c := &Classifier{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("embed pattern %q: %w", p, err)
		}
		c.patterns = append(c.patterns, re)
	}

	return c, nil
}

// FromConfig builds a classifier from the defaults plus sources.embed_patterns.
func FromConfig() *Classifier {
	return WithPatterns(viper.GetStringSlice(key.SourcesEmbedPatterns))
}

// WithPatterns builds a classifier from the defaults plus extra. Invalid
// extra patterns are logged and skipped.
func WithPatterns(extra []string) *Classifier {
	patterns := lo.Filter(extra, func(p string, _ int) bool {
		if _, err := regexp.Compile(p); err != nil {
			log.WithField("pattern", p).Warnf("skipping embed pattern: %v", err)
			return false
		}
		return true
	})

	return lo.Must(NewClassifier(append(slices.Clone(DefaultEmbedPatterns), patterns...)...))
}

// Classify returns Embedded for URLs matching an embed pattern, Direct for any
// other non-empty URL and None for blank input.
func (c *Classifier) Classify(url string) Kind {
	url = strings.TrimSpace(url)
	if url == "" {
		return None
	}

	if lo.SomeBy(c.patterns, func(re *regexp.Regexp) bool { return re.MatchString(url) }) {
		return Embedded
	}

	return Direct
}

// Resolve picks the watch URL, falling back to the trailer, and classifies it.
func (c *Classifier) Resolve(content Content) Source {
	url := strings.TrimSpace(content.WatchURL)
	if url == "" {
		url = strings.TrimSpace(content.TrailerURL)
	}

	return Source{
		URL:     url,
		Kind:    c.Classify(url),
		Title:   content.Title,
		Headers: content.Headers,
	}
}

var defaultClassifier = lo.Must(NewClassifier(DefaultEmbedPatterns...))

// Classify runs the default classifier.
func Classify(url string) Kind {
	return defaultClassifier.Classify(url)
}

// Resolve runs the default classifier over a content record.
func Resolve(content Content) Source {
	return defaultClassifier.Resolve(content)
}
