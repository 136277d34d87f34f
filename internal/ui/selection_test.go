package ui

import "testing"

func TestSelectionSubscribeAndCancel(t *testing.T) {
	s := NewSelection()
	if s.Get() != nil {
		t.Fatalf("new selection not empty")
	}
	a, b := &Note{ID: "a"}, &Note{ID: "b"}

	var order []string
	cancelFirst := s.Subscribe(func(n *Note) { order = append(order, "1:"+n.ID) })
	s.Subscribe(func(n *Note) { order = append(order, "2:"+n.ID) })

	s.Set(a)
	if s.Get() != a {
		t.Fatalf("get=%v", s.Get())
	}
	cancelFirst()
	cancelFirst()
	s.Set(b)

	want := []string{"1:a", "2:a", "2:b"}
	if len(order) != len(want) {
		t.Fatalf("calls=%v want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("calls=%v want %v", order, want)
		}
	}
}

func TestHUDFollowsSelection(t *testing.T) {
	s := NewSelection()
	h := NewHUD(s)
	n := &Note{ID: "x", VisualLength: 30, Section: true}
	n.Lane = 1
	s.Set(n)
	d := h.Details()
	if len(d) == 0 || d[2] != "lane    2" || d[len(d)-1] != "section start" {
		t.Fatalf("details=%q", d)
	}
	h.Close()
	s.Set(nil)
	if len(h.Details()) == 0 {
		t.Fatalf("closed HUD still follows selection")
	}
}
