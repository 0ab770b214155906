package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-vibe/ava/constant"
	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/where"
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
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("generation.latency_ms"), ShouldEqual, "generation_latency_ms")
		})

		Convey("Env names carry the application prefix", func() {
			field := Default[key.GenerationLatencyMs]
			So(field.Env(), ShouldEqual, "AVA_GENERATION_LATENCY_MS")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a config file in the config directory", t, func() {
		path := filepath.Join(where.Config(), constant.Ava+".toml")
		defer func() {
			_ = filesystem.API().Remove(path)
		}()

		Convey("An unknown theme fallback is rejected", func() {
			So(afero.WriteFile(filesystem.API(), path, []byte("[theme]\nfallback = \"purple\"\n"), 0o644), ShouldBeNil)
			err := Setup()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ThemeFallback)
			So(err.Error(), ShouldContainSubstring, "purple")

			Convey("and accepted once corrected", func() {
				So(afero.WriteFile(filesystem.API(), path, []byte("[theme]\nfallback = \"light\"\n"), 0o644), ShouldBeNil)
				So(Setup(), ShouldBeNil)
				So(viper.GetString(key.ThemeFallback), ShouldEqual, "light")

				So(afero.WriteFile(filesystem.API(), path, []byte("[theme]\nfallback = \"dark\"\n"), 0o644), ShouldBeNil)
				So(Setup(), ShouldBeNil)
			})
		})

		Convey("An unknown icons variant is rejected", func() {
			viper.Set(key.IconsVariant, "hieroglyphs")
			defer viper.Set(key.IconsVariant, "plain")
			So(validate(), ShouldNotBeNil)
		})
	})
}

func TestValues(t *testing.T) {
	Convey("Given the defaults", t, func() {
		So(Setup(), ShouldBeNil)

		So(Latency(), ShouldEqual, 2*time.Second)
		So(TypewriterInterval(), ShouldEqual, 100*time.Millisecond)
		So(FPS(), ShouldEqual, 60)

		Convey("Overrides are read as milliseconds", func() {
			viper.Set(key.GenerationLatencyMs, 350)
			defer viper.Set(key.GenerationLatencyMs, 2000)
			So(Latency(), ShouldEqual, 350*time.Millisecond)
		})

		Convey("Out of range values fall back", func() {
			viper.Set(key.GenerationLatencyMs, -5)
			viper.Set(key.TypewriterIntervalMs, 0)
			viper.Set(key.PreviewFPS, -1)
			defer func() {
				viper.Set(key.GenerationLatencyMs, 2000)
				viper.Set(key.TypewriterIntervalMs, 100)
				viper.Set(key.PreviewFPS, 60)
			}()

			So(Latency(), ShouldEqual, time.Duration(0))
			So(TypewriterInterval(), ShouldEqual, 100*time.Millisecond)
			So(FPS(), ShouldEqual, 60)
		})
	})
}
