package health

import (
	"context"
	"testing"
)

func TestNewChecker(t *testing.T) {
	checker := NewChecker("catalog", func(ctx context.Context) CheckResult {
		return Healthy("%d voices", 10)
	})

	if checker.Name() != "catalog" {
		t.Errorf("Name() = %v, want catalog", checker.Name())
	}
	res := checker.Check(context.Background())
	if res.Status != StatusHealthy || res.Message != "10 voices" {
		t.Errorf("Check() = %+v, want healthy with message", res)
	}
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]CheckResult
		want    Status
		healthy bool
	}{
		{
			name:    "empty registry",
			results: map[string]CheckResult{},
			want:    StatusHealthy,
			healthy: true,
		},
		{
			name: "all healthy",
			results: map[string]CheckResult{
				"a": Healthy("ok"),
				"b": Healthy("ok"),
			},
			want:    StatusHealthy,
			healthy: true,
		},
		{
			name: "degraded passes",
			results: map[string]CheckResult{
				"a": Healthy("ok"),
				"b": Degraded("placeholder avatars"),
			},
			want:    StatusDegraded,
			healthy: true,
		},
		{
			name: "unhealthy wins",
			results: map[string]CheckResult{
				"a": Degraded("meh"),
				"b": Unhealthy("broken"),
				"c": Healthy("ok"),
			},
			want:    StatusUnhealthy,
			healthy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("BookFab", "v1.0.0.0")
			for name, res := range tt.results {
				res := res
				r.RegisterFunc(name, func(ctx context.Context) CheckResult { return res })
			}

			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", report.Healthy(), tt.healthy)
			}
			if len(report.Checks) != len(tt.results) {
				t.Fatalf("len(Checks) = %d, want %d", len(report.Checks), len(tt.results))
			}
			for i := 1; i < len(report.Checks); i++ {
				if report.Checks[i-1].Name >= report.Checks[i].Name {
					t.Errorf("checks not sorted by name: %v", report.Checks)
				}
			}
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry("BookFab", "v1.0.0.0")
	r.RegisterFunc("catalog", func(ctx context.Context) CheckResult { return Unhealthy("old") })
	r.RegisterFunc("catalog", func(ctx context.Context) CheckResult { return Healthy("new") })

	report := r.Check(context.Background())
	if len(report.Checks) != 1 || report.Checks[0].Message != "new" {
		t.Errorf("Checks = %+v, want the replacement only", report.Checks)
	}
	if report.Checks[0].Name != "catalog" {
		t.Errorf("Name = %q, want catalog", report.Checks[0].Name)
	}
}

func TestReport_String(t *testing.T) {
	r := &Report{App: "BookFab", Version: "v1.0.0.0", Status: StatusDegraded, Checks: make([]CheckResult, 2)}
	if got, want := r.String(), "BookFab v1.0.0.0: degraded (2 checks)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
