package automaton

import (
	"errors"
	"testing"
)

func TestNewLineBufferSeed(t *testing.T) {
	b, err := NewLineBuffer(7, 4)
	if err != nil {
		t.Fatalf("NewLineBuffer: %v", err)
	}

	rows := b.Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for y, row := range rows[:3] {
		if row.Alive() != 0 {
			t.Errorf("row %d should be dead, got %v", y, row)
		}
	}
	if !rows[3].Equal(Row{0, 0, 0, 1, 0, 0, 0}) {
		t.Errorf("seed row = %v", rows[3])
	}
}

func TestNewLineBufferInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewLineBuffer(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
			if b != nil {
				t.Error("expected nil buffer")
			}
		})
	}
}

func TestLineBufferSlidingWindow(t *testing.T) {
	b, err := NewLineBuffer(9, 5)
	if err != nil {
		t.Fatalf("NewLineBuffer: %v", err)
	}

	for i := 0; i < 20; i++ {
		before := b.Rows()
		last := b.Last()

		evicted := b.Step()
		after := b.Rows()

		if len(after) != len(before) {
			t.Fatalf("step %d: length %d -> %d", i, len(before), len(after))
		}
		if len(evicted) != b.Width() {
			t.Fatalf("step %d: evicted row has length %d", i, len(evicted))
		}
		if !evicted.Equal(before[0]) {
			t.Fatalf("step %d: evicted %v, first row was %v", i, evicted, before[0])
		}
		for y := 0; y < len(before)-1; y++ {
			if !after[y].Equal(before[y+1]) {
				t.Fatalf("step %d: row %d did not shift", i, y)
			}
		}
		if !after[len(after)-1].Equal(NextRow(last)) {
			t.Fatalf("step %d: newest row is not NextRow(previous newest)", i)
		}
	}
}

func TestLineBufferHeightOne(t *testing.T) {
	b, err := NewLineBuffer(5, 1)
	if err != nil {
		t.Fatalf("NewLineBuffer: %v", err)
	}

	evicted := b.Step()
	if !evicted.Equal(Row{0, 0, 1, 0, 0}) {
		t.Errorf("evicted = %v", evicted)
	}
	if !b.Last().Equal(Row{0, 1, 1, 1, 0}) {
		t.Errorf("last = %v", b.Last())
	}
}

func TestLineBufferCopyTo(t *testing.T) {
	b, _ := NewLineBuffer(3, 2)
	b.Step()

	dst := make([]Cell, 6)
	if n := b.CopyTo(dst); n != 6 {
		t.Fatalf("CopyTo wrote %d cells", n)
	}
	want := []Cell{0, 1, 0, 1, 1, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("CopyTo = %v, want %v", dst, want)
		}
	}
}

func TestLineBufferRowsAreCopies(t *testing.T) {
	b, _ := NewLineBuffer(5, 2)
	rows := b.Rows()
	rows[1][2] = Dead
	if b.Last()[2] != Alive {
		t.Error("Rows leaked internal storage")
	}
}
