package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/campus/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.CacheSize, convey.ShouldEqual, 1024)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 100)
				convey.So(cfg.Branches, convey.ShouldHaveLength, 6)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAMPUS_ADDR", ":8080")
			_ = os.Setenv("CAMPUS_CACHE_SIZE", "64")
			_ = os.Setenv("CAMPUS_MAX_TOP_LIMIT", "25")
			_ = os.Setenv("CAMPUS_LOG_FORMAT", "json")
			_ = os.Setenv("CAMPUS_BRANCHES", "CSE, IT ,AIML")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CacheSize, convey.ShouldEqual, 64)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 25)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.Branches, convey.ShouldResemble, []string{"CSE", "IT", "AIML"})
			})
		})

		convey.Convey("When branches and metrics settings are given in lower case", func() {
			_ = os.Setenv("CAMPUS_BRANCHES", "cse, it,CSE,,mech")
			_ = os.Setenv("CAMPUS_METRICS_ENABLED", "false")
			_ = os.Setenv("CAMPUS_METRICS_INTERVAL", "30s")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then branch codes should be upper-cased and deduplicated", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Branches, convey.ShouldResemble, []string{"CSE", "IT", "MECH"})
			})

			convey.Convey("And the metrics settings should be decoded", func() {
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.MetricsInterval, convey.ShouldEqual, 30*time.Second)
			})
		})

		convey.Convey("When the metrics interval is not a duration", func() {
			_ = os.Setenv("CAMPUS_METRICS_INTERVAL", "often")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
seed_path: "/srv/campus/seed.yaml"
cache_size: 256
branches: [CSE, ECE]
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAMPUS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.SeedPath, convey.ShouldEqual, "/srv/campus/seed.yaml")
				convey.So(cfg.CacheSize, convey.ShouldEqual, 256)
				convey.So(cfg.Branches, convey.ShouldResemble, []string{"CSE", "ECE"})
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 100) // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
cache_size: 256
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAMPUS_CONFIG", tmpFile)
			_ = os.Setenv("CAMPUS_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")  // Overridden by env
				convey.So(cfg.CacheSize, convey.ShouldEqual, 256) // From file
				convey.So(cfg.SeedPath, convey.ShouldBeEmpty)     // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAMPUS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("CAMPUS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("CAMPUS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("CAMPUS_CACHE_SIZE", "invalid")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, k := range []string{
		"CAMPUS_CONFIG",
		"CAMPUS_ADDR",
		"CAMPUS_LOG_LEVEL",
		"CAMPUS_LOG_FORMAT",
		"CAMPUS_SEED_PATH",
		"CAMPUS_CACHE_SIZE",
		"CAMPUS_MAX_TOP_LIMIT",
		"CAMPUS_BRANCHES",
		"CAMPUS_METRICS_ENABLED",
		"CAMPUS_METRICS_INTERVAL",
	} {
		_ = os.Unsetenv(k)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "campus-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
