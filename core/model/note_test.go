package model

import (
	"reflect"
	"testing"
)

func TestSortNotesIsStable(t *testing.T) {
	notes := []Note{
		{Offset: 2, Lane: 0},
		{Offset: 1, Lane: 2},
		{Offset: 1, Lane: 1},
		{Offset: 0, Lane: 0},
	}
	SortNotes(notes)
	want := []Note{
		{Offset: 0, Lane: 0},
		{Offset: 1, Lane: 2},
		{Offset: 1, Lane: 1},
		{Offset: 2, Lane: 0},
	}
	if !reflect.DeepEqual(notes, want) {
		t.Fatalf("got %v want %v", notes, want)
	}
}

func TestSwipeValid(t *testing.T) {
	for s := SwipeNone; s <= SwipeRight; s++ {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if Swipe(5).Valid() || Swipe(-1).Valid() {
		t.Fatalf("out of range swipe reported valid")
	}
	if SwipeLeft.String() != "left" {
		t.Fatalf("String=%q", SwipeLeft.String())
	}
}

func TestSectionSet(t *testing.T) {
	s := NewSectionSet([]float64{0, 16.5})
	if !s.Has(16.5) || s.Has(1) {
		t.Fatalf("section lookup wrong: %v", s)
	}
}

func TestHeld(t *testing.T) {
	if (Note{Length: 0}).Held() {
		t.Fatalf("tap note reported held")
	}
	if !(Note{Length: 0.25}).Held() {
		t.Fatalf("hold note not reported held")
	}
}
