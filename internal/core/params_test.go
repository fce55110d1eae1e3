package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Universe", Params: []Parameter{IntParam("generation", "Generation", 12)}},
		{Name: "Speed", Params: []Parameter{IntParam("tps", "Ticks/s", 3), TextParam("state", "State", "paused")}},
	}}
	p, ok := snap.Lookup("tps")
	if !ok || p.Value != "3" || p.Type != ParamTypeInt {
		t.Fatalf("Lookup(tps) = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("state"); p.Value != "paused" {
		t.Fatalf("state = %q", p.Value)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("found a missing key")
	}
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Key: "tps", Step: 1, Min: 1, HasMin: true}
	if got := c.Clamp(-3); got != 1 {
		t.Fatalf("Clamp(-3) = %d", got)
	}
	if got := c.Clamp(90); got != 90 {
		t.Fatalf("Clamp(90) = %d", got)
	}
	c.Max, c.HasMax = 60, true
	if got := c.Clamp(90); got != 60 {
		t.Fatalf("Clamp(90) = %d with max", got)
	}
}
