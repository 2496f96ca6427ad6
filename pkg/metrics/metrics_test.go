package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

// value reads the current value of a counter or gauge.
func value(m prometheus.Metric) float64 {
	var d dto.Metric
	if err := m.Write(&d); err != nil {
		return -1
	}
	switch {
	case d.Counter != nil:
		return d.Counter.GetValue()
	case d.Gauge != nil:
		return d.Gauge.GetValue()
	}
	return -1
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should use the campus namespace", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "campus")
				So(manager.subsystem, ShouldEqual, "portal")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithMetricPrefix("pre"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(false),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager.namespace, ShouldEqual, "test")
				So(manager.subsystem, ShouldEqual, "unit")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.enabled.Load(), ShouldBeFalse)
				So(time.Duration(manager.refreshInterval.Load()), ShouldEqual, 5*time.Second)
			})

			Convey("And metric names should carry the prefix", func() {
				manager.cacheHits.Inc()
				mfs, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, mf := range mfs {
					if mf.GetName() == "test_unit_pre_cache_hits_total" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When creating with empty values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
				WithCustomLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "campus")
				So(manager.subsystem, ShouldEqual, "portal")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(time.Duration(manager.refreshInterval.Load()), ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording query metrics", func() {
			before := value(globalManager.queriesTotal.WithLabelValues("placement"))
			RecordQuery("placement")
			RecordQuery("placement")
			RecordQueryLatency("placement", 1.5)
			RecordQueryError("placement")

			Convey("Then the query counter should grow", func() {
				So(value(globalManager.queriesTotal.WithLabelValues("placement")), ShouldEqual, before+2)
				So(value(globalManager.queryErrors.WithLabelValues("placement")), ShouldBeGreaterThanOrEqualTo, 1.0)
			})
		})

		Convey("When recording cache metrics", func() {
			hits := value(globalManager.cacheHits)
			misses := value(globalManager.cacheMisses)
			RecordCacheHit()
			RecordCacheMiss()
			RecordCacheMiss()
			UpdateCacheSize(7)

			Convey("Then hits, misses and size should be tracked", func() {
				So(value(globalManager.cacheHits), ShouldEqual, hits+1)
				So(value(globalManager.cacheMisses), ShouldEqual, misses+2)
				So(value(globalManager.cacheSize), ShouldEqual, 7.0)
			})
		})

		Convey("When recording dataset metrics", func() {
			before := value(globalManager.snapshotReplaces.WithLabelValues("clubs"))
			RecordSnapshotReplace("clubs")
			RecordSnapshotReplaceLatency("clubs", 0.25)
			UpdateDatasetRecords("clubs", 12)

			Convey("Then the dataset series should be updated", func() {
				So(value(globalManager.snapshotReplaces.WithLabelValues("clubs")), ShouldEqual, before+1)
				So(value(globalManager.datasetRecords.WithLabelValues("clubs")), ShouldEqual, 12.0)
				So(value(globalManager.snapshotLastUnix.WithLabelValues("clubs")), ShouldBeGreaterThan, 0.0)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			So(func() {
				RecordHTTPRequest("/stats", "GET", "200")
				RecordHTTPRequestDuration("/stats", "GET", "200", 3.2)
				RecordErrorByComponent("api", "bad_request")
				RecordErrorByType("bad_request", "warning")
				RecordErrorByEndpoint("/students", "GET", "bad_request")
				RecordErrorLatency("api", "bad_request", 0.4)
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			UpdateSystemMemoryUsage(1024)
			UpdateSystemGoroutineCount(12)
			RecordSystemGCPauseTime(0.5)

			Convey("Then the gauges should hold the last value", func() {
				So(value(globalManager.systemMemoryUsage), ShouldEqual, 1024.0)
				So(value(globalManager.systemGoroutineCount), ShouldEqual, 12.0)
			})
		})

		Convey("When gathering the registry", func() {
			RecordQuery("families")
			names, err := Families()

			Convey("Then the campus families should be listed", func() {
				So(err, ShouldBeNil)
				So(names, ShouldContain, "campus_portal_queries_total")
				So(GetRegistry(), ShouldEqual, customRegistry)
			})
		})
	})
}

func TestMetricsRuntimeSettings(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		defer SetEnabled(true)
		defer SetRefreshInterval(defaultRefreshInterval)

		Convey("When recording is disabled", func() {
			hits := value(globalManager.cacheHits)
			queries := value(globalManager.queriesTotal.WithLabelValues("disabled"))
			UpdateCacheSize(3)
			SetEnabled(false)
			RecordCacheHit()
			RecordQuery("disabled")
			UpdateCacheSize(99)

			Convey("Then record functions should be no-ops", func() {
				So(Enabled(), ShouldBeFalse)
				So(value(globalManager.cacheHits), ShouldEqual, hits)
				So(value(globalManager.queriesTotal.WithLabelValues("disabled")), ShouldEqual, queries)
				So(value(globalManager.cacheSize), ShouldEqual, 3.0)
			})

			Convey("And re-enabling should resume recording", func() {
				SetEnabled(true)
				RecordCacheHit()
				So(value(globalManager.cacheHits), ShouldEqual, hits+1)
			})
		})

		Convey("When the refresh interval is changed", func() {
			SetRefreshInterval(2 * time.Second)
			SetRefreshInterval(0)

			Convey("Then positive values should stick and others be ignored", func() {
				So(RefreshInterval(), ShouldEqual, 2*time.Second)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			before := value(globalManager.queriesTotal.WithLabelValues("concurrent"))
			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						RecordQuery("concurrent")
						RecordCacheHit()
						RecordHTTPRequest("/healthz", "GET", "200")
					}
				}()
			}
			wg.Wait()

			Convey("Then no increments should be lost", func() {
				So(value(globalManager.queriesTotal.WithLabelValues("concurrent")), ShouldEqual, before+1000)
			})
		})
	})
}
