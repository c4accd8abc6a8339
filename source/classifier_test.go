package source

import (
	"testing"

	"github.com/anisan-cli/reel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestClassify(t *testing.T) {
	Convey("Given the default classifier", t, func() {
		Convey("A plain media file is direct", func() {
			So(Classify("https://cdn.example/movie.mp4"), ShouldEqual, Direct)
		})

		Convey("An HLS playlist is direct", func() {
			So(Classify("https://cdn.example/hls/master.m3u8"), ShouldEqual, Direct)
		})

		Convey("Embedded stream hosts are embedded", func() {
			for _, url := range []string{
				"https://embed.example/stream/iframe",
				"https://www.youtube.com/embed/dQw4w9WgXcQ",
				"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
				"https://player.vimeo.com/video/76979871",
				"HTTPS://EMBED.EXAMPLE/STREAM/x",
			} {
				Convey(url, func() {
					So(Classify(url), ShouldEqual, Embedded)
				})
			}
		})

		Convey("Blank input is none", func() {
			So(Classify(""), ShouldEqual, None)
			So(Classify("   "), ShouldEqual, None)
		})

		Convey("Surrounding whitespace is ignored", func() {
			So(Classify("  https://embed.example/stream/iframe\n"), ShouldEqual, Embedded)
		})

		Convey("Classification is deterministic", func() {
			url := "https://cdn.example/movie.mp4"
			So(Classify(url), ShouldEqual, Classify(url))
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a content record", t, func() {
		Convey("The watch URL wins", func() {
			src := Resolve(Content{
				WatchURL:   "https://cdn.example/movie.mp4",
				TrailerURL: "https://www.youtube.com/embed/abc",
				Title:      "Movie",
			})
			So(src.URL, ShouldEqual, "https://cdn.example/movie.mp4")
			So(src.Kind, ShouldEqual, Direct)
			So(src.Title, ShouldEqual, "Movie")
			So(src.Playable(), ShouldBeTrue)
		})

		Convey("The trailer is used when the watch URL is missing", func() {
			src := Resolve(Content{TrailerURL: "https://www.youtube.com/embed/abc"})
			So(src.Kind, ShouldEqual, Embedded)
		})

		Convey("Nothing to play yields none", func() {
			src := Resolve(Content{PosterURL: "https://cdn.example/poster.jpg"})
			So(src.Kind, ShouldEqual, None)
			So(src.Playable(), ShouldBeFalse)
		})
	})
}

func TestClassifierPatterns(t *testing.T) {
	Convey("Given custom patterns", t, func() {
		Convey("An invalid pattern is rejected", func() {
			_, err := NewClassifier(`(`)
			So(err, ShouldNotBeNil)
		})

		Convey("Configured patterns extend the defaults", func() {
			viper.Set(key.SourcesEmbedPatterns, []string{`^https://watch\.internal/`, `(`})
			defer viper.Set(key.SourcesEmbedPatterns, []string{})

			c := FromConfig()
			So(c.Classify("https://watch.internal/abc"), ShouldEqual, Embedded)
			So(c.Classify("https://www.youtube.com/embed/abc"), ShouldEqual, Embedded)
			So(c.Classify("https://cdn.example/movie.mp4"), ShouldEqual, Direct)
		})

		Convey("Explicit patterns leave the defaults untouched", func() {
			c := WithPatterns([]string{`^https://live\.example/`})
			So(c.Classify("https://live.example/now"), ShouldEqual, Embedded)
			So(c.Classify("https://player.vimeo.com/video/1"), ShouldEqual, Embedded)

			So(len(DefaultEmbedPatterns), ShouldEqual, 5)
			So(Classify("https://live.example/now"), ShouldEqual, Direct)
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Kinds render by name", t, func() {
		So(Direct.String(), ShouldEqual, "direct")
		So(Embedded.String(), ShouldEqual, "embedded")
		So(None.String(), ShouldEqual, "none")

		text, err := Embedded.MarshalText()
		So(err, ShouldBeNil)
		So(string(text), ShouldEqual, "embedded")
	})
}
