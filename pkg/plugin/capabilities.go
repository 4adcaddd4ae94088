// SPDX-License-Identifier: MPL-2.0

package plugin

import "context"

type (
	// Integration is a data-source integration provider contributed by a
	// plugin. The composition engine only collects integrations in
	// declaration order; connecting to the backing service is the host
	// runtime's job.
	Integration interface {
		// IntegrationName identifies the integration in listings and logs.
		IntegrationName() string
	}

	// AuthProvider supplies the authentication capability for the whole
	// composed application. At most one plugin in a composition may
	// contribute one.
	AuthProvider interface {
		// ProviderName identifies the provider in listings and logs.
		ProviderName() string
	}

	// RouteHandler handles one route. The host runtime's HTTP adapter
	// builds the request context before invoking it.
	RouteHandler func(ctx context.Context) error

	// Middleware wraps a RouteHandler. Middleware composes outermost-first:
	// the first declared middleware of the first plugin sees the request
	// first.
	Middleware func(next RouteHandler) RouteHandler

	// ActionFunc is a callable server action. Input decoding and result
	// encoding happen in the host runtime's action dispatcher.
	ActionFunc func(ctx context.Context, input map[string]any) (any, error)

	// InitHook runs once when the host runtime starts.
	InitHook func(ctx context.Context) error

	// RequestHook runs for every request before routing.
	RequestHook func(ctx context.Context) error

	// ErrorHook runs when a handler or middleware returns an error. It may
	// translate the error or return it unchanged.
	ErrorHook func(ctx context.Context, err error) error

	// ShutdownHook runs once when the host runtime shuts down.
	ShutdownHook func(ctx context.Context) error
)
