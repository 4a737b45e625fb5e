// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"

	"chimkin/internal/models"
)

func testProduct(name string, price float64) models.Product {
	return models.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
	}
}

func TestAddNewLine(t *testing.T) {
	p := testProduct("Wings", 7.99)

	c := New().Add(p)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines: got %d, want 1", len(lines))
	}
	if lines[0].ID != p.ID {
		t.Errorf("line product: got %s, want %s", lines[0].ID, p.ID)
	}
	if lines[0].Quantity != 1 {
		t.Errorf("quantity: got %d, want 1", lines[0].Quantity)
	}
}

func TestAddSameProductIncrements(t *testing.T) {
	p := testProduct("Wings", 7.99)

	// N adds of the same product: exactly one line, quantity N.
	c := New()
	const n = 5
	for i := 0; i < n; i++ {
		c = c.Add(p)
	}

	if c.Len() != 1 {
		t.Fatalf("lines: got %d, want 1", c.Len())
	}
	if got := c.Lines()[0].Quantity; got != n {
		t.Errorf("quantity: got %d, want %d", got, n)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	a := testProduct("Appetizer", 3)
	b := testProduct("Burger", 6)
	d := testProduct("Drink", 2)

	c := New().Add(a).Add(b).Add(d).Add(a)

	lines := c.Lines()
	want := []uuid.UUID{a.ID, b.ID, d.ID}
	if len(lines) != len(want) {
		t.Fatalf("lines: got %d, want %d", len(lines), len(want))
	}
	for i, id := range want {
		if lines[i].ID != id {
			t.Errorf("line %d: got %s, want %s", i, lines[i].ID, id)
		}
	}
}

func TestUpdateQuantity(t *testing.T) {
	p := testProduct("Wings", 7.99)
	c := New().Add(p).Add(p) // quantity 2

	c = c.UpdateQuantity(p.ID, 3)
	if got := c.Lines()[0].Quantity; got != 5 {
		t.Errorf("quantity after +3: got %d, want 5", got)
	}

	c = c.UpdateQuantity(p.ID, -4)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Errorf("quantity after -4: got %d, want 1", got)
	}
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	p := testProduct("Wings", 7.99)

	// Dropping to exactly zero removes the line.
	c := New().Add(p).UpdateQuantity(p.ID, -1)
	if c.Len() != 0 {
		t.Errorf("lines after drop to 0: got %d, want 0", c.Len())
	}

	// Dropping below zero removes it too, never leaves a negative line.
	c = New().Add(p).UpdateQuantity(p.ID, -10)
	if c.Len() != 0 {
		t.Errorf("lines after drop below 0: got %d, want 0", c.Len())
	}
	for _, l := range c.Lines() {
		if l.Quantity <= 0 {
			t.Errorf("line with non-positive quantity retained: %+v", l)
		}
	}
}

func TestUpdateQuantityUnknownIDNoOp(t *testing.T) {
	p := testProduct("Wings", 7.99)
	c := New().Add(p)

	c2 := c.UpdateQuantity(uuid.New(), 3)
	if c2.Len() != 1 || c2.Lines()[0].Quantity != 1 {
		t.Errorf("unknown ID changed the cart: %+v", c2.Lines())
	}
}

func TestRemove(t *testing.T) {
	a := testProduct("A", 1)
	b := testProduct("B", 2)
	c := New().Add(a).Add(b)

	c = c.Remove(a.ID)
	if c.Len() != 1 {
		t.Fatalf("lines: got %d, want 1", c.Len())
	}
	if c.Lines()[0].ID != b.ID {
		t.Errorf("remaining line: got %s, want %s", c.Lines()[0].ID, b.ID)
	}

	// Removing a missing ID is a no-op.
	c = c.Remove(uuid.New())
	if c.Len() != 1 {
		t.Errorf("lines after no-op remove: got %d, want 1", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New().Add(testProduct("A", 1)).Add(testProduct("B", 2)).Clear()
	if c.Len() != 0 {
		t.Errorf("lines after clear: got %d, want 0", c.Len())
	}
	if c.Total() != 0 || c.Count() != 0 {
		t.Errorf("totals after clear: total=%v count=%d", c.Total(), c.Count())
	}
}

func TestTotalAndCount(t *testing.T) {
	a := testProduct("A", 7.99)
	b := testProduct("B", 2.50)

	c := New().Add(a).Add(a).Add(b) // 2×7.99 + 1×2.50

	if got, want := c.Total(), 2*7.99+2.50; math.Abs(got-want) > 1e-9 {
		t.Errorf("total: got %v, want %v", got, want)
	}
	if got := c.Count(); got != 3 {
		t.Errorf("count: got %d, want 3", got)
	}

	// Totals track every mutation, no stale caching.
	c = c.UpdateQuantity(a.ID, -1)
	if got, want := c.Total(), 7.99+2.50; math.Abs(got-want) > 1e-9 {
		t.Errorf("total after update: got %v, want %v", got, want)
	}
	if got := c.Count(); got != 2 {
		t.Errorf("count after update: got %d, want 2", got)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	p := testProduct("Wings", 7.99)
	base := New().Add(p)

	// Mutating a derived cart must not affect the base snapshot.
	derived := base.Add(p)
	if got := base.Lines()[0].Quantity; got != 1 {
		t.Errorf("base quantity changed: got %d, want 1", got)
	}
	if got := derived.Lines()[0].Quantity; got != 2 {
		t.Errorf("derived quantity: got %d, want 2", got)
	}

	// Mutating the slice returned by Lines must not leak into the cart.
	lines := base.Lines()
	lines[0].Quantity = 99
	if got := base.Lines()[0].Quantity; got != 1 {
		t.Errorf("Lines() aliased internal state: got %d, want 1", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	a := testProduct("Wings", 7.99)
	b := testProduct("Cola", 1.99)
	c := New().Add(a).Add(a).Add(b)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Cart
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Len() != 2 {
		t.Fatalf("restored lines: got %d, want 2", restored.Len())
	}
	if restored.Count() != c.Count() {
		t.Errorf("restored count: got %d, want %d", restored.Count(), c.Count())
	}
	if math.Abs(restored.Total()-c.Total()) > 1e-9 {
		t.Errorf("restored total: got %v, want %v", restored.Total(), c.Total())
	}
	// Order survives the round trip.
	if restored.Lines()[0].ID != a.ID || restored.Lines()[1].ID != b.ID {
		t.Error("line order not preserved through serialization")
	}
}

func TestUnmarshalDropsZeroQuantityLines(t *testing.T) {
	// A snapshot written by a buggy or tampered client may carry zero or
	// negative quantities; loading must not resurrect them.
	payload := []byte(`[
		{"id":"6f1b0c9e-0000-4000-8000-000000000001","name":"ok","price":2,"quantity":1},
		{"id":"6f1b0c9e-0000-4000-8000-000000000002","name":"zero","price":2,"quantity":0},
		{"id":"6f1b0c9e-0000-4000-8000-000000000003","name":"neg","price":2,"quantity":-4}
	]`)

	var c Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("lines: got %d, want 1", c.Len())
	}
}

func TestEmptyCartMarshalsToEmptyArray(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty cart JSON: got %s, want []", data)
	}
}
