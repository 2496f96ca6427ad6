package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/campus/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.SeedPath, convey.ShouldBeEmpty)
			convey.So(cfg.CacheSize, convey.ShouldEqual, 1024)
			convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Branches, convey.ShouldResemble, []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"})
			convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			convey.So(cfg.MetricsInterval, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid settings", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":       func(c *config.Config) { c.Addr = " " },
			"zero cache size":  func(c *config.Config) { c.CacheSize = 0 },
			"negative top":     func(c *config.Config) { c.MaxTopLimit = -1 },
			"unknown log form": func(c *config.Config) { c.LogFormat = "xml" },
			"zero interval":    func(c *config.Config) { c.MetricsInterval = 0 },
		}
		for name, mutate := range cases {
			convey.Convey("When the config has "+name, func() {
				cfg := config.New(context.Background())
				mutate(cfg)

				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
