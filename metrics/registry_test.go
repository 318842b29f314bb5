package metrics

import "testing"

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	c1 := r.Counter("a")
	c2 := r.Counter("a")
	if c1 != c2 {
		t.Error("Registry.Counter should return the same instance for the same name")
	}

	g1 := r.Gauge("b")
	g2 := r.Gauge("b")
	if g1 != g2 {
		t.Error("Registry.Gauge should return the same instance for the same name")
	}

	h1 := r.Histogram("c")
	h2 := r.Histogram("c")
	if h1 != h2 {
		t.Error("Registry.Histogram should return the same instance for the same name")
	}

	lc1 := r.LabeledCounter("d")
	lc2 := r.LabeledCounter("d")
	if lc1 != lc2 {
		t.Error("Registry.LabeledCounter should return the same instance for the same name")
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter("requests").Add(3)
	r.Gauge("depth").Set(2)
	r.Histogram("latency").Observe(10)
	r.LabeledCounter("failures").Inc("bad_proof")

	snap := r.Snapshot()

	if snap["requests"].(int64) != 3 {
		t.Errorf("requests = %v, want 3", snap["requests"])
	}
	if snap["depth"].(int64) != 2 {
		t.Errorf("depth = %v, want 2", snap["depth"])
	}
	hist, ok := snap["latency"].(map[string]interface{})
	if !ok {
		t.Fatalf("latency snapshot has wrong type: %T", snap["latency"])
	}
	if hist["count"].(int64) != 1 {
		t.Errorf("latency count = %v, want 1", hist["count"])
	}
	failures, ok := snap["failures"].(map[string]int64)
	if !ok {
		t.Fatalf("failures snapshot has wrong type: %T", snap["failures"])
	}
	if failures["bad_proof"] != 1 {
		t.Errorf("failures[bad_proof] = %v, want 1", failures["bad_proof"])
	}
}
