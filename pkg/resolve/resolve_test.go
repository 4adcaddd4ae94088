// SPDX-License-Identifier: MPL-2.0

package resolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/superapp-labs/superapp/pkg/plugin"
	"github.com/superapp-labs/superapp/pkg/resolve"
	"github.com/superapp-labs/superapp/pkg/types"
)

type (
	stubIntegration string
	stubAuth        string
)

func (s stubIntegration) IntegrationName() string { return string(s) }

func (s stubAuth) ProviderName() string { return string(s) }

func noopHandler(context.Context) error { return nil }

func noopAction(context.Context, map[string]any) (any, error) { return nil, nil }

func TestResolve_EmptyInput(t *testing.T) {
	t.Parallel()

	cfg, err := resolve.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil) returned error: %v", err)
	}

	if cfg.Auth != nil {
		t.Errorf("Resolve(nil).Auth = %v, want nil", cfg.Auth)
	}
	if cfg.Integrations == nil || len(cfg.Integrations) != 0 {
		t.Errorf("Resolve(nil).Integrations = %v, want non-nil empty slice", cfg.Integrations)
	}
	if cfg.Middleware == nil || len(cfg.Middleware) != 0 {
		t.Errorf("Resolve(nil).Middleware = %v, want non-nil empty slice", cfg.Middleware)
	}
	if cfg.Permissions == nil || cfg.Roles == nil || cfg.Actions == nil || cfg.Routes == nil {
		t.Error("Resolve(nil) returned nil mapping fields, want non-nil empty maps")
	}
	if cfg.Hooks.OnInit == nil || cfg.Hooks.OnRequest == nil || cfg.Hooks.OnError == nil || cfg.Hooks.OnShutdown == nil {
		t.Error("Resolve(nil) returned nil hook lists, want non-nil empty slices")
	}
}

func TestResolve_ConcatenatesSequencesInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tagged := func(tag string) plugin.Middleware {
		return func(next plugin.RouteHandler) plugin.RouteHandler {
			order = append(order, tag)
			return next
		}
	}

	plugins := []plugin.Plugin{
		{
			Name:         "a",
			Integrations: []plugin.Integration{stubIntegration("pg"), stubIntegration("redis")},
			Middleware:   []plugin.Middleware{tagged("a1"), tagged("a2")},
		},
		{
			Name:         "b",
			Integrations: []plugin.Integration{stubIntegration("s3")},
			Middleware:   []plugin.Middleware{tagged("b1")},
		},
	}

	cfg, err := resolve.Resolve(plugins)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	wantIntegrations := []string{"pg", "redis", "s3"}
	if len(cfg.Integrations) != len(wantIntegrations) {
		t.Fatalf("Resolve() collected %d integrations, want %d", len(cfg.Integrations), len(wantIntegrations))
	}
	for i, want := range wantIntegrations {
		if got := cfg.Integrations[i].IntegrationName(); got != want {
			t.Errorf("Integrations[%d] = %q, want %q", i, got, want)
		}
	}

	// Middleware order is observable by applying each wrapper once:
	// outermost must be the first plugin's first entry.
	if len(cfg.Middleware) != 3 {
		t.Fatalf("Resolve() collected %d middleware, want 3", len(cfg.Middleware))
	}
	for _, mw := range cfg.Middleware {
		mw(noopHandler)
	}
	want := []string{"a1", "a2", "b1"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("middleware order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestResolve_AuthSetOnce(t *testing.T) {
	t.Parallel()

	cfg, err := resolve.Resolve([]plugin.Plugin{
		{Name: "core"},
		{Name: "oauth", Auth: stubAuth("oauth2")},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if cfg.Auth == nil || cfg.Auth.ProviderName() != "oauth2" {
		t.Errorf("Resolve().Auth = %v, want oauth2 provider", cfg.Auth)
	}
}

func TestResolve_AuthConflict(t *testing.T) {
	t.Parallel()

	_, err := resolve.Resolve([]plugin.Plugin{
		{Name: "core"},
		{Name: "oauth", Auth: stubAuth("oauth2")},
		{Name: "magic-link", Auth: stubAuth("magic")},
	})
	if err == nil {
		t.Fatal("Resolve() succeeded, want auth conflict")
	}

	var conflict *resolve.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error type = %T, want *resolve.ConflictError", err)
	}
	if conflict.Kind != resolve.KindAuth || conflict.Key != "auth" {
		t.Errorf("conflict = (%s, %q), want (auth, \"auth\")", conflict.Kind, conflict.Key)
	}
	if conflict.OwnerA != "oauth" || conflict.OwnerB != "magic-link" {
		t.Errorf("conflict owners = (%q, %q), want (oauth, magic-link)", conflict.OwnerA, conflict.OwnerB)
	}
}

func TestResolve_PermissionConflict(t *testing.T) {
	t.Parallel()

	_, err := resolve.Resolve([]plugin.Plugin{
		{Name: "A", Permissions: map[types.PermissionSlug]plugin.Rule{"p1": {Description: "rule A"}}},
		{Name: "B", Permissions: map[types.PermissionSlug]plugin.Rule{"p1": {Description: "rule B"}}},
	})
	if err == nil {
		t.Fatal("Resolve() succeeded, want permission conflict")
	}

	var conflict *resolve.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error type = %T, want *resolve.ConflictError", err)
	}
	if conflict.Kind != resolve.KindPermission || conflict.Key != "p1" {
		t.Errorf("conflict = (%s, %q), want (permission, p1)", conflict.Kind, conflict.Key)
	}
	if conflict.OwnerA != "A" || conflict.OwnerB != "B" {
		t.Errorf("conflict owners = (%q, %q), want (A, B)", conflict.OwnerA, conflict.OwnerB)
	}
}

func TestResolve_ActionConflictTracesFirstOwner(t *testing.T) {
	t.Parallel()

	_, err := resolve.Resolve([]plugin.Plugin{
		{Name: "invites", Actions: map[types.ActionName]plugin.ActionFunc{"sendInvite": noopAction}},
		{Name: "audit", Actions: map[types.ActionName]plugin.ActionFunc{"recordEvent": noopAction}},
		{Name: "invites-v2", Actions: map[types.ActionName]plugin.ActionFunc{"sendInvite": noopAction}},
	})
	if err == nil {
		t.Fatal("Resolve() succeeded, want action conflict")
	}

	var conflict *resolve.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error type = %T, want *resolve.ConflictError", err)
	}
	if conflict.Kind != resolve.KindAction || conflict.Key != "sendInvite" {
		t.Errorf("conflict = (%s, %q), want (action, sendInvite)", conflict.Kind, conflict.Key)
	}
	if conflict.OwnerA != "invites" || conflict.OwnerB != "invites-v2" {
		t.Errorf("conflict owners = (%q, %q), want (invites, invites-v2)", conflict.OwnerA, conflict.OwnerB)
	}
}

func TestResolve_DistinctRoutesSucceed(t *testing.T) {
	t.Parallel()

	cfg, err := resolve.Resolve([]plugin.Plugin{
		{Name: "A", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /x": noopHandler}},
		{Name: "B", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /y": noopHandler}},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if len(cfg.Routes) != 2 {
		t.Fatalf("Resolve() collected %d routes, want 2", len(cfg.Routes))
	}
	for _, key := range []types.RouteKey{"GET /x", "GET /y"} {
		if cfg.Routes[key] == nil {
			t.Errorf("Resolve().Routes missing %q", key)
		}
	}
}

func TestResolve_RouteConflict(t *testing.T) {
	t.Parallel()

	_, err := resolve.Resolve([]plugin.Plugin{
		{Name: "blog", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /posts": noopHandler}},
		{Name: "cms", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /posts": noopHandler}},
	})

	var conflict *resolve.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error = %v, want *resolve.ConflictError", err)
	}
	if conflict.Kind != resolve.KindRoute || conflict.Key != "GET /posts" {
		t.Errorf("conflict = (%s, %q), want (route, GET /posts)", conflict.Kind, conflict.Key)
	}
}

func TestResolve_RolesUnionFirstSeenOrder(t *testing.T) {
	t.Parallel()

	cfg, err := resolve.Resolve([]plugin.Plugin{
		{Name: "A", Roles: map[types.RoleName][]types.PermissionSlug{"editor": {"x", "y"}}},
		{Name: "B", Roles: map[types.RoleName][]types.PermissionSlug{"editor": {"y", "z"}}},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	want := []types.PermissionSlug{"x", "y", "z"}
	got := cfg.Roles["editor"]
	if len(got) != len(want) {
		t.Fatalf("Roles[editor] = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Roles[editor][%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolve_HooksCollectedInOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	initHook := func(tag string) plugin.InitHook {
		return func(context.Context) error {
			calls = append(calls, tag)
			return nil
		}
	}

	cfg, err := resolve.Resolve([]plugin.Plugin{
		{Name: "A", OnInit: initHook("A")},
		{Name: "B", OnInit: initHook("B")},
		{Name: "C"},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(cfg.Hooks.OnInit) != 2 {
		t.Fatalf("Resolve() collected %d init hooks, want 2", len(cfg.Hooks.OnInit))
	}
	for _, h := range cfg.Hooks.OnInit {
		if err := h(context.Background()); err != nil {
			t.Fatalf("init hook returned error: %v", err)
		}
	}
	if calls[0] != "A" || calls[1] != "B" {
		t.Errorf("init hook order = %v, want [A B]", calls)
	}
	if len(cfg.Hooks.OnRequest) != 0 || len(cfg.Hooks.OnError) != 0 || len(cfg.Hooks.OnShutdown) != 0 {
		t.Error("Resolve() collected hooks no plugin supplied")
	}
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	roles := map[types.RoleName][]types.PermissionSlug{"editor": {"x"}}
	plugins := []plugin.Plugin{
		{Name: "A", Roles: roles, Permissions: map[types.PermissionSlug]plugin.Rule{"x": {}}},
		{Name: "B", Roles: map[types.RoleName][]types.PermissionSlug{"editor": {"y"}}},
	}

	if _, err := resolve.Resolve(plugins); err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(roles["editor"]) != 1 || roles["editor"][0] != "x" {
		t.Errorf("Resolve() mutated input role grants: %v", roles["editor"])
	}
	if len(plugins[0].Permissions) != 1 {
		t.Errorf("Resolve() mutated input permissions: %v", plugins[0].Permissions)
	}
}

func TestResolve_DuplicateNameFallsBackToHostOwner(t *testing.T) {
	t.Parallel()

	// Two plugins sharing a display name degrade ownership tracing: the
	// scan cuts off at the first plugin matching the current name, so no
	// earlier claimant is found and the defensive sentinel is reported.
	_, err := resolve.Resolve([]plugin.Plugin{
		{Name: "twin", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /x": noopHandler}},
		{Name: "twin", Routes: map[types.RouteKey]plugin.RouteHandler{"GET /x": noopHandler}},
	})

	var conflict *resolve.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error = %v, want *resolve.ConflictError", err)
	}
	if conflict.OwnerA != resolve.HostOwner {
		t.Errorf("conflict.OwnerA = %q, want %q", conflict.OwnerA, resolve.HostOwner)
	}
	if conflict.OwnerB != "twin" {
		t.Errorf("conflict.OwnerB = %q, want %q", conflict.OwnerB, "twin")
	}
}

func TestConflictError_Message(t *testing.T) {
	t.Parallel()

	err := &resolve.ConflictError{
		Kind:   resolve.KindPermission,
		Key:    "p1",
		OwnerA: "A",
		OwnerB: "B",
	}

	want := `Plugin conflict: permission "p1" is defined by both "A" and "B". Each permission must be provided by exactly one plugin.`
	if got := err.Error(); got != want {
		t.Errorf("ConflictError.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, resolve.ErrConflict) {
		t.Error("ConflictError does not wrap ErrConflict")
	}
}
