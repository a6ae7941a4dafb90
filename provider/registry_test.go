package provider

import (
	"context"
	"testing"
)

type stubProvider struct {
	name      string
	available bool
}

func (s *stubProvider) Name() string                       { return s.name }
func (s *stubProvider) IsAvailable(_ context.Context) bool { return s.available }

func TestRegistry_FactoryLifecycle(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("stub", func(cfg map[string]any) (*stubProvider, error) {
		name, _ := cfg["name"].(string)
		return &stubProvider{name: name, available: true}, nil
	})

	p, err := reg.Create("stub", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "a" {
		t.Errorf("name = %q", p.Name())
	}

	if _, err := reg.Create("missing", nil); err == nil {
		t.Error("expected error for unregistered factory")
	}

	reg.Set("stub", p)
	got, ok := reg.Get("stub")
	if !ok || got != p {
		t.Error("expected cached instance back")
	}

	if names := reg.List(); len(names) != 1 || names[0] != "stub" {
		t.Errorf("List = %v", names)
	}
}

func TestManager_DefaultAndSelector(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	m := NewManager(reg, &HealthCheckSelector[*stubProvider]{})

	m.Register("up", func(map[string]any) (*stubProvider, error) {
		return &stubProvider{name: "up", available: true}, nil
	})
	m.Register("down", func(map[string]any) (*stubProvider, error) {
		return &stubProvider{name: "down", available: false}, nil
	})

	if err := m.Initialize("up", nil); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := m.Initialize("down", nil); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// Selector skips the unavailable provider.
	p, err := m.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name() != "up" {
		t.Errorf("selected %q, want up", p.Name())
	}

	if err := m.SetDefault("down"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}
	p, err = m.Get(context.Background())
	if err != nil {
		t.Fatalf("Get with default: %v", err)
	}
	if p.Name() != "down" {
		t.Errorf("default = %q, want down", p.Name())
	}

	if err := m.SetDefault("nope"); err == nil {
		t.Error("expected error setting unknown default")
	}
}

func TestHealthCheckSelector_SkipsUnavailable(t *testing.T) {
	providers := map[string]*stubProvider{
		"alpha": {name: "alpha", available: false},
		"beta":  {name: "beta", available: true},
	}
	s := &HealthCheckSelector[*stubProvider]{}
	p, err := s.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if p.Name() != "beta" {
		t.Errorf("selected %q, want beta", p.Name())
	}

	if _, err := s.Select(context.Background(), map[string]*stubProvider{
		"alpha": {name: "alpha", available: false},
	}); err == nil {
		t.Error("expected error when nothing is available")
	}
}
