package memoize_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-memoize/memoize"
)

type document struct {
	Body string
}

func TestIdentity_SamePointerHits(t *testing.T) {
	calls := 0
	wordCount := memoize.NewIdentity(func(d *document) (int, error) {
		calls++
		return len(d.Body), nil
	})

	doc := &document{Body: "hello world"}
	for i := 0; i < 3; i++ {
		n, err := wordCount.Get(doc)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if n != len(doc.Body) {
			t.Fatalf("Get() = %d, want %d", n, len(doc.Body))
		}
	}

	if calls != 1 {
		t.Errorf("compute ran %d times for one pointer, want 1", calls)
	}

	stats := wordCount.Stats()
	if stats.Misses != 1 || stats.Hits != 2 {
		t.Errorf("Stats() = %+v, want 1 miss and 2 hits", stats)
	}
}

func TestIdentity_StructurallyEqualPointersAreIndependent(t *testing.T) {
	calls := 0
	id := memoize.NewIdentity(func(d *document) (int, error) {
		calls++
		return calls, nil
	})

	a := &document{Body: "same"}
	b := &document{Body: "same"}

	va, err := id.Get(a)
	if err != nil {
		t.Fatalf("Get(a) error: %v", err)
	}
	vb, err := id.Get(b)
	if err != nil {
		t.Fatalf("Get(b) error: %v", err)
	}

	if calls != 2 {
		t.Errorf("compute ran %d times for two distinct pointers, want 2", calls)
	}
	if va == vb {
		t.Errorf("structurally equal pointers shared an entry: %d == %d", va, vb)
	}
	if id.Len() != 2 {
		t.Errorf("Len() = %d, want 2", id.Len())
	}
}

func TestIdentity_ErrorsAreNotCached(t *testing.T) {
	wantErr := errors.New("parse failed")
	calls := 0
	parse := memoize.NewIdentity(func(d *document) (int, error) {
		calls++
		if calls == 1 {
			return 0, wantErr
		}
		return len(d.Body), nil
	})

	doc := &document{Body: "retry me"}
	if _, err := parse.Get(doc); !errors.Is(err, wantErr) {
		t.Fatalf("first Get() error = %v, want %v", err, wantErr)
	}
	if parse.Len() != 0 {
		t.Fatalf("Len() after failed compute = %d, want 0", parse.Len())
	}

	n, err := parse.Get(doc)
	if err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if n != len(doc.Body) {
		t.Errorf("second Get() = %d, want %d", n, len(doc.Body))
	}
}

func TestIdentity_Delete(t *testing.T) {
	calls := 0
	id := memoize.NewIdentity(func(d *document) (int, error) {
		calls++
		return len(d.Body), nil
	})

	doc := &document{Body: "x"}
	if _, err := id.Get(doc); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	id.Delete(doc)
	if id.Len() != 0 {
		t.Errorf("Len() after Delete = %d, want 0", id.Len())
	}
	if _, err := id.Get(doc); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("compute ran %d times after delete, want 2", calls)
	}
}
