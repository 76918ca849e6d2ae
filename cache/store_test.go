package cache

import (
	"context"
	"errors"
	"testing"
)

// mockStore for testing the generic GetOrCompute helper.
type mockStore struct {
	result any
	err    error
}

func (m *mockStore) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	return m.result, m.err
}

func (m *mockStore) Delete(ctx context.Context, key string) error { return nil }

func (m *mockStore) Flush(ctx context.Context) error { return nil }

func (m *mockStore) Len() int { return 0 }

func (m *mockStore) Stats() Stats { return Stats{} }

func TestGetOrCompute_NilInterfaceNoPanic(t *testing.T) {
	// A nil interface as the cached value must not panic the typed helper.
	mock := &mockStore{result: nil, err: nil}

	type someInterface interface {
		DoSomething() string
	}

	result, err := GetOrCompute[someInterface](context.Background(), mock, "test-key", func(ctx context.Context) (someInterface, error) {
		return nil, nil
	})

	if err != nil {
		t.Errorf("expected no error but got: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result but got: %v", result)
	}
}

func TestGetOrCompute_NilPointerNoPanic(t *testing.T) {
	// Typed nil pointers must pass through the assertion.
	mock := &mockStore{result: (*string)(nil), err: nil}

	result, err := GetOrCompute[*string](context.Background(), mock, "test-key", func(ctx context.Context) (*string, error) {
		return nil, nil
	})

	if err != nil {
		t.Errorf("expected no error but got: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result but got: %v", result)
	}
}

func TestGetOrCompute_TypeAssertionFailure(t *testing.T) {
	// A cached value of the wrong type indicates a key collision between
	// wrappers; the helper must surface it rather than panic.
	mock := &mockStore{result: "wrong-type", err: nil}

	result, err := GetOrCompute[int](context.Background(), mock, "test-key", func(ctx context.Context) (int, error) {
		return 42, nil
	})

	if !errors.Is(err, ErrInvalidResultType) {
		t.Errorf("expected ErrInvalidResultType but got: %v", err)
	}
	if result != 0 {
		t.Errorf("expected zero value (0) but got: %v", result)
	}
}

func TestGetOrCompute_StoreError(t *testing.T) {
	wantErr := errors.New("backend unavailable")
	mock := &mockStore{result: nil, err: wantErr}

	result, err := GetOrCompute[string](context.Background(), mock, "test-key", func(ctx context.Context) (string, error) {
		return "unused", nil
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v but got: %v", wantErr, err)
	}
	if result != "" {
		t.Errorf("expected zero value but got: %q", result)
	}
}

func TestGetOrCompute_ValidResult(t *testing.T) {
	expectedValue := "test-value"
	mock := &mockStore{result: expectedValue, err: nil}

	result, err := GetOrCompute[string](context.Background(), mock, "test-key", func(ctx context.Context) (string, error) {
		return expectedValue, nil
	})

	if err != nil {
		t.Errorf("expected no error but got: %v", err)
	}
	if result != expectedValue {
		t.Errorf("expected '%s' but got: '%s'", expectedValue, result)
	}
}

func TestStats_HitRate(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{name: "no lookups", stats: Stats{}, want: 0},
		{name: "all hits", stats: Stats{Hits: 10}, want: 1},
		{name: "all misses", stats: Stats{Misses: 10}, want: 0},
		{name: "half", stats: Stats{Hits: 5, Misses: 5}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
