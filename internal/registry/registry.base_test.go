package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Fatalf("Register = (%v, %v), want (true, nil)", isNew, err)
	}

	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Fatalf("re-Register = (%v, %v), want (false, nil)", isNew, err)
	}

	item, exists := r.Get("a")
	if !exists || item != 2 {
		t.Errorf("Get = (%v, %v), want (2, true)", item, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get must report missing names")
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("empty name must be rejected")
	}
}

func TestMustGet_PanicsOnMiss(t *testing.T) {
	r := NewRegistry[string]()

	defer func() {
		if recover() == nil {
			t.Error("MustGet must panic for unregistered names")
		}
	}()
	r.MustGet("missing")
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "made", nil
	}

	for i := 0; i < 3; i++ {
		item, err := r.GetOrCreate("x", creator)
		if err != nil || item != "made" {
			t.Fatalf("GetOrCreate = (%v, %v)", item, err)
		}
	}
	if calls != 1 {
		t.Errorf("creator called %d times, want 1", calls)
	}
}

func TestGetOrCreate_CreatorError(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.GetOrCreate("x", func() (string, error) {
		return "", errors.New("nope")
	})
	if err == nil {
		t.Fatal("creator error must surface")
	}
	if _, exists := r.Get("x"); exists {
		t.Error("failed creation must not register anything")
	}
}

func TestClearAndClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	cleaned := 0
	deleted, err := r.Clear("a", func(int) error {
		cleaned++
		return nil
	})
	if err != nil || !deleted || cleaned != 1 {
		t.Fatalf("Clear = (%v, %v), cleaned %d", deleted, err, cleaned)
	}

	deleted, err = r.Clear("a", nil)
	if err != nil || deleted {
		t.Errorf("clearing a missing name = (%v, %v), want (false, nil)", deleted, err)
	}

	count, err := r.ClearAll(nil)
	if err != nil || count != 1 {
		t.Errorf("ClearAll = (%d, %v), want (1, nil)", count, err)
	}
	if len(r.Names()) != 0 {
		t.Error("registry must be empty after ClearAll")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()
}
