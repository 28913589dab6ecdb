package core

import "testing"

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("rows", "Rows", 12)}},
		{Name: "b", Params: []Parameter{Uint64Param("generation", "Generation", 7)}},
	}}
	p, ok := snap.Lookup("generation")
	if !ok || p.Value != "7" || p.Label != "Generation" {
		t.Fatalf("Lookup(generation) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
