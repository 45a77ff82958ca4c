package bitset_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlath/internal/bitset"
)

func TestSet_AddTestRemove(t *testing.T) {
	s := bitset.New(4)
	if !s.IsEmpty() {
		t.Fatal("fresh set should be empty")
	}
	s.Add(2)
	s.Add(70) // forces growth past one word
	if !s.Test(2) || !s.Test(70) {
		t.Fatal("expected bits 2 and 70 set")
	}
	if s.Test(3) {
		t.Fatal("bit 3 should not be set")
	}
	if got := s.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	s.Remove(2)
	if s.Test(2) {
		t.Fatal("bit 2 should be cleared")
	}
}

func TestSet_IntersectUnion(t *testing.T) {
	a := bitset.New(8)
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := bitset.New(8)
	b.Add(2)
	b.Add(3)
	b.Add(4)

	a.IntersectWith(b)
	if got := a.Items(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("IntersectWith: got %v, want [2 3]", got)
	}

	a.UnionWith(b)
	if got := a.Items(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Fatalf("UnionWith: got %v, want [2 3 4]", got)
	}
}

func TestSet_Equal(t *testing.T) {
	a := bitset.New(4)
	a.Add(1)
	b := bitset.New(200)
	b.Add(1)
	if !a.Equal(b) {
		t.Fatal("sets with the same bits but different lengths should be equal")
	}
	b.Add(150)
	if a.Equal(b) {
		t.Fatal("sets with different bits should not be equal")
	}
}

func TestSet_Clone(t *testing.T) {
	a := bitset.New(4)
	a.Add(1)
	c := a.Clone()
	c.Add(2)
	if a.Test(2) {
		t.Fatal("Clone must be independent of the original")
	}
	if !c.Test(1) || !c.Test(2) {
		t.Fatal("clone should carry original bits plus new ones")
	}
}
