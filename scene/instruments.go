// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/subsurface-viz/nodeviz/tree"
)

// meterName is the instrumentation scope of the view lifecycle metrics.
const meterName = "github.com/subsurface-viz/nodeviz/scene"

// instruments holds the metric instruments of a [Factory].
// They are created once by [WithMeterProvider].
type instruments struct {
	// created counts the views created by the factory.
	created metric.Int64Counter

	// disposed counts the views disposed by their targets.
	disposed metric.Int64Counter

	// live is the number of views that have been created
	// and not yet disposed.
	live metric.Int64UpDownCounter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(meterName)
	ins := &instruments{}
	var err error

	ins.created, err = meter.Int64Counter(
		"nodeviz.views.created",
		metric.WithDescription("Number of views created"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create created counter: %w", err)
	}

	ins.disposed, err = meter.Int64Counter(
		"nodeviz.views.disposed",
		metric.WithDescription("Number of views disposed"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create disposed counter: %w", err)
	}

	ins.live, err = meter.Int64UpDownCounter(
		"nodeviz.views.live",
		metric.WithDescription("Number of views alive in all targets"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create live counter: %w", err)
	}
	return ins, nil
}

func kindAttributes(nodeKind, targetKind tree.Kind) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("node.kind", string(nodeKind)),
		attribute.String("target.kind", string(targetKind)),
	)
}

func (ins *instruments) recordCreated(nodeKind, targetKind tree.Kind) {
	if ins == nil {
		return
	}
	ctx := context.Background()
	opts := kindAttributes(nodeKind, targetKind)
	ins.created.Add(ctx, 1, opts)
	ins.live.Add(ctx, 1, opts)
}

func (ins *instruments) recordDisposed(nodeKind, targetKind tree.Kind) {
	if ins == nil {
		return
	}
	ctx := context.Background()
	opts := kindAttributes(nodeKind, targetKind)
	ins.disposed.Add(ctx, 1, opts)
	ins.live.Add(ctx, -1, opts)
}
