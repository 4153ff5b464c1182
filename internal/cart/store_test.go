package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestAddMergesOnProductID(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "19.99"))
	s.Add("p1", "v1", "Vendor One", price(t, "19.99"))

	items := s.Snapshot()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "1.00"))
	s.Add("p2", "v2", "Vendor Two", price(t, "2.00"))
	s.Add("p3", "v1", "Vendor One", price(t, "3.00"))

	items := s.Snapshot()
	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Fatalf("items[%d].ProductID = %s, want %s", i, items[i].ProductID, id)
		}
	}
}

func TestSetQuantityClampsToOne(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "5.00"))

	for _, q := range []int{0, -3} {
		s.SetQuantity("p1", q)
		if got := s.Snapshot()[0].Quantity; got != 1 {
			t.Fatalf("SetQuantity(%d): quantity = %d, want 1", q, got)
		}
	}

	s.SetQuantity("p1", 4)
	if got := s.Snapshot()[0].Quantity; got != 4 {
		t.Fatalf("quantity = %d, want 4", got)
	}
}

func TestSetQuantityUnknownProductNoOp(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "5.00"))
	s.SetQuantity("missing", 3)
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "5.00"))
	s.Add("p2", "v2", "Vendor Two", price(t, "6.00"))

	s.Remove("p1")
	if items := s.Snapshot(); len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("unexpected items after remove: %+v", items)
	}

	s.Remove("missing")
	if s.Len() != 1 {
		t.Fatalf("remove of missing id changed cart")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("cart not empty after clear")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewStore()
	s.Add("p1", "v1", "Vendor One", price(t, "5.00"))

	snap := s.Snapshot()
	snap[0].Quantity = 99

	if got := s.Snapshot()[0].Quantity; got != 1 {
		t.Fatalf("mutating snapshot leaked into store: quantity = %d", got)
	}
}

func TestSessionsIsolation(t *testing.T) {
	reg := NewSessions()
	a := reg.NewSessionID()
	b := reg.NewSessionID()
	if a == b {
		t.Fatalf("session ids collide")
	}

	reg.Get(a).Add("p1", "v1", "Vendor One", price(t, "5.00"))
	if reg.Get(b).Len() != 0 {
		t.Fatalf("cart leaked across sessions")
	}
	if reg.Get(a).Len() != 1 {
		t.Fatalf("cart not stable for same session")
	}

	reg.Drop(a)
	if reg.Get(a).Len() != 0 {
		t.Fatalf("dropped session kept items")
	}
}
