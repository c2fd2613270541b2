package cache

import "testing"

type sample struct {
	A int
	B string
}

func TestStoreAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	key, err := Key("stitch", map[string]float64{"buffer_meters": 5.0})
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	want := sample{A: 1, B: "hi"}
	if err := Store(dir, key, want); err != nil {
		t.Fatalf("Store: %v", err)
	}

	var got sample
	ok, err := Load(dir, key, &got)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadMissingKeyReturnsNotOK(t *testing.T) {
	dir := t.TempDir()
	var got sample
	ok, err := Load(dir, "does-not-exist", &got)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestKeyChangesWithParams(t *testing.T) {
	a, _ := Key("match", map[string]float64{"f": 0.7})
	b, _ := Key("match", map[string]float64{"f": 0.8})
	if a == b {
		t.Error("expected different keys for different params")
	}
}
