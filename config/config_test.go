package config

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/reel/filesystem"
	"github.com/anisan-cli/reel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.controls_autohide")
			So(result, ShouldEqual, "player_controls_autohide")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PlayerVolume]

		Convey("Env should be prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "REEL_PLAYER_VOLUME")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.PlayerVolume)
		})

		Convey("Section and Type come from the key and the default", func() {
			So(field.Section(), ShouldEqual, "player")
			So(field.Type(), ShouldEqual, "int")
			patterns := Default[key.SourcesEmbedPatterns]
			So(patterns.Type(), ShouldEqual, "[]string")
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}

func TestPlaybackSettings(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("It should validate", func() {
			p, err := PlaybackSettings()
			So(err, ShouldBeNil)
			So(p.MPVPath, ShouldEqual, "mpv")
			So(p.InitialVolume(), ShouldEqual, 1.0)
			So(p.AutoHide().Milliseconds(), ShouldEqual, 3500)
		})

		Convey("An out of range volume should be rejected", func() {
			viper.Set(key.PlayerVolume, 140)
			defer viper.Set(key.PlayerVolume, 100)

			_, err := PlaybackSettings()
			So(err, ShouldNotBeNil)
		})

		Convey("Port zero is a valid surface address", func() {
			viper.Set(key.SurfaceAddr, "localhost:0")
			defer viper.Set(key.SurfaceAddr, "127.0.0.1:0")

			_, err := PlaybackSettings()
			So(err, ShouldBeNil)
		})

		Convey("A malformed surface address should be rejected", func() {
			viper.Set(key.SurfaceAddr, "nowhere")
			defer viper.Set(key.SurfaceAddr, "127.0.0.1:0")

			_, err := PlaybackSettings()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Given an empty config directory", t, func() {
		So(Setup(), ShouldBeNil)
		So(filesystem.API().MkdirAll(filepath.Dir(FilePath()), 0o755), ShouldBeNil)
		_ = filesystem.API().Remove(FilePath())

		Convey("Save should create the config file", func() {
			So(Save(), ShouldBeNil)

			exists, err := afero.Exists(filesystem.API(), FilePath())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Save should refuse invalid settings", func() {
			viper.Set(key.PlayerVolume, -1)
			defer viper.Set(key.PlayerVolume, 100)

			So(Save(), ShouldNotBeNil)
		})
	})
}
