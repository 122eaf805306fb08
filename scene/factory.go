// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"go.opentelemetry.io/otel/metric"

	"github.com/subsurface-viz/nodeviz/tree"
)

// ViewCreator returns a new, unattached view.
type ViewCreator func() View

// Registration is one entry of the table of a [Factory].
type Registration struct {
	NodeKind   tree.Kind
	TargetKind tree.Kind
}

// Factory is a registry of view constructors keyed by
// (node kind, target kind) pairs. It is constructed explicitly
// and passed to the [RootNode] (and from there to its targets);
// there is no global factory.
type Factory struct {
	creators map[Registration]ViewCreator
	order    []Registration
	metrics  *instruments
}

// FactoryOption configures a [Factory].
type FactoryOption func(f *Factory)

// WithMeterProvider makes the factory record the view lifecycle
// metrics nodeviz.views.created, nodeviz.views.disposed and
// nodeviz.views.live through the given provider.
func WithMeterProvider(mp metric.MeterProvider) FactoryOption {
	return func(f *Factory) {
		if mp == nil {
			return
		}
		f.metrics = errors.Log1(newInstruments(mp))
	}
}

// NewFactory returns a new empty factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{creators: map[Registration]ViewCreator{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Register registers the view constructor for nodes of the given kind
// shown in targets of the given kind. The kinds can be general ones,
// such as [KindRenderTarget], in which case the constructor applies to
// every more specific kind that does not have its own registration.
// Registering the same pair twice replaces the earlier constructor.
func (f *Factory) Register(nodeKind, targetKind tree.Kind, ctor ViewCreator) {
	key := Registration{nodeKind, targetKind}
	if _, has := f.creators[key]; has {
		slog.Debug("scene: replacing view registration", "node", nodeKind, "target", targetKind)
	} else {
		f.order = append(f.order, key)
	}
	f.creators[key] = ctor
}

// Lookup returns the constructor for the given kind lists, which
// are ordered from the most specific kind to the most general one.
// Node kinds take priority: each node kind is tried with every target
// kind, in order, before falling back on the next node kind.
func (f *Factory) Lookup(nodeKinds, targetKinds []tree.Kind) (ViewCreator, Registration, bool) {
	for _, nk := range nodeKinds {
		for _, tk := range targetKinds {
			key := Registration{nk, tk}
			if ctor, ok := f.creators[key]; ok {
				return ctor, key, true
			}
		}
	}
	return nil, Registration{}, false
}

// CanCreate returns whether the factory has a view for the
// given node in the given target.
func (f *Factory) CanCreate(n, t tree.Node) bool {
	if f == nil || n == nil || t == nil {
		return false
	}
	_, _, ok := f.Lookup(n.Kinds(), t.Kinds())
	return ok
}

// Create returns a new view of the given node for the given target,
// or nil if the pair is unsupported. The view is not attached; that
// is done by [TargetNode.ShowView], which is the only code that
// should call Create.
func (f *Factory) Create(n Node, t Target) View {
	if f == nil || n == nil || t == nil {
		return nil
	}
	ctor, _, ok := f.Lookup(n.Kinds(), t.Kinds())
	if !ok {
		return nil
	}
	v := ctor()
	if v == nil {
		return nil
	}
	InitView(v)
	f.metrics.recordCreated(tree.KindOf(n), tree.KindOf(t))
	return v
}

// Registrations returns the table of the factory in registration order.
func (f *Factory) Registrations() []Registration {
	return append([]Registration(nil), f.order...)
}

// viewDisposed records the disposal of a view of the given kinds.
func (f *Factory) viewDisposed(nodeKind, targetKind tree.Kind) {
	if f == nil {
		return
	}
	f.metrics.recordDisposed(nodeKind, targetKind)
}
