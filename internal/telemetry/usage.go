// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package telemetry provides the usage-collection plumbing for kiln: the
// analytics-backed sender, collection settings, and the process and host
// collaborators consumed by usage events.
package telemetry

import (
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/microsoft/ApplicationInsights-Go/appinsights"
	deviceid "github.com/microsoft/go-deviceid"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/kilnworks/kiln/internal"
	"github.com/kilnworks/kiln/internal/telemetry/events"
	"github.com/kilnworks/kiln/internal/telemetry/fields"
)

const appName = "kiln"

// The equivalent of the persisted analytics opt-out, for scripts and CI.
const collectTelemetryEnvVar = "KILN_COLLECT_TELEMETRY"

const instrumentationKey = "c3f26bd2-9d70-4c98-a52b-7fd6aff93f17"

// IsTelemetryEnabled reports the environment-level kill switch. A user-level
// opt-out is stored in Settings; both must allow collection.
func IsTelemetryEnabled() bool {
	return os.Getenv(collectTelemetryEnvVar) != "no"
}

// UsageReporter is the concrete events.Sender. It flattens each emission into
// an Application Insights event: category and parameter become properties and
// the event name, custom dimensions are keyed by their wire keys, the numeric
// value becomes a measurement, and a fixed set of common attributes is
// stamped on every event.
type UsageReporter struct {
	client  appinsights.TelemetryClient
	clock   clock.Clock
	common  []attribute.KeyValue
	session fields.DimensionMap
}

// UsageReporterOptions configures optional reporter behavior.
type UsageReporterOptions struct {
	// Clock used for event timestamps. Defaults to the wall clock.
	Clock clock.Clock

	// CommonAttributes are stamped on every emission.
	CommonAttributes []attribute.KeyValue

	// SessionDimensions are merged into every emission's dimensions.
	SessionDimensions fields.DimensionMap
}

func NewUsageReporter(client appinsights.TelemetryClient, opts UsageReporterOptions) *UsageReporter {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &UsageReporter{
		client:  client,
		clock:   clk,
		common:  opts.CommonAttributes,
		session: opts.SessionDimensions,
	}
}

// SendEvent implements events.Sender. Fire and forget: the underlying channel
// batches and transmits asynchronously and never reports errors here.
func (r *UsageReporter) SendEvent(category, parameter string, opts events.SendOptions) {
	r.client.Track(r.buildEvent(category, parameter, opts))
}

func (r *UsageReporter) buildEvent(category, parameter string, opts events.SendOptions) *appinsights.EventTelemetry {
	ev := appinsights.NewEventTelemetry(eventName(category, parameter))
	ev.Timestamp = r.clock.Now().UTC()

	ev.Properties["event.category"] = category
	ev.Properties["event.parameter"] = parameter
	if opts.Label != "" {
		ev.Properties["event.label"] = opts.Label
	}
	if opts.Value != nil {
		ev.Measurements["event.value"] = float64(*opts.Value)
	}

	for _, attr := range r.common {
		ev.Properties[string(attr.Key)] = attr.Value.Emit()
	}
	for dim, val := range r.session {
		ev.Properties[dim.WireKey()] = val
	}
	for dim, val := range opts.Dimensions {
		ev.Properties[dim.WireKey()] = val
	}

	return ev
}

// Close flushes buffered events, waiting up to the given timeout. Called once
// at process exit.
func (r *UsageReporter) Close(timeout time.Duration) {
	select {
	case <-r.client.Channel().Close(timeout):
	case <-time.After(2 * timeout):
	}
}

// NewClient builds the Application Insights client used by the reporter.
func NewClient() appinsights.TelemetryClient {
	config := appinsights.NewTelemetryConfiguration(instrumentationKey)
	config.MaxBatchInterval = 2 * time.Second
	return appinsights.NewTelemetryClientFromConfig(config)
}

// eventName formats the Application Insights event name. Command paths
// contain spaces ("kiln pub get"); names are dot-separated like our span and
// command event names elsewhere.
func eventName(category, parameter string) string {
	return category + "." + strings.ReplaceAll(parameter, " ", ".")
}

// CommonAttributes returns the application-level attributes stamped on every
// usage event.
func CommonAttributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(appName),
		semconv.ServiceVersionKey.String(internal.VersionNumber()),
		semconv.OSTypeKey.String(runtime.GOOS),
		semconv.HostArchKey.String(runtime.GOARCH),
		semconv.ProcessRuntimeVersionKey.String(runtime.Version()),
	}

	machineId, err := deviceid.Get()
	if err != nil {
		log.Printf("telemetry: could not determine machine id: %v", err)
	} else {
		attrs = append(attrs, attribute.String("machine.id", machineId))
	}

	return attrs
}
