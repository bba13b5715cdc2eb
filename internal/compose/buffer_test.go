package compose

import "testing"

func TestPushPopAndClear(t *testing.T) {
	var b Buffer
	b.Push(Cell{Key: 'a'})
	b.Push(Cell{Key: 'b'})
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	b.Pop()
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("len = %d, want 0", b.Len())
	}
}

func TestPushOverflowIsSilentNoOp(t *testing.T) {
	var b Buffer
	for i := 0; i < Capacity; i++ {
		if !b.Push(Cell{Key: 'a'}) {
			t.Fatalf("push %d should have succeeded", i)
		}
	}
	if b.Push(Cell{Key: 'a'}) {
		t.Fatalf("push past capacity should fail")
	}
	if b.Len() != Capacity {
		t.Fatalf("len = %d, want %d", b.Len(), Capacity)
	}
}

func TestMarkIndexAndClearMark(t *testing.T) {
	var b Buffer
	b.Push(Cell{Key: 'a'})
	b.Push(Cell{Key: 'n'})
	c := b.Get(0)
	c.Mark = 1
	b.ReplaceAt(0, c)
	if b.MarkIndex() != 0 {
		t.Fatalf("MarkIndex = %d, want 0", b.MarkIndex())
	}
	b.ClearMark()
	if b.MarkIndex() != -1 {
		t.Fatalf("MarkIndex after clear = %d, want -1", b.MarkIndex())
	}
}

func TestHasFinalConsonant(t *testing.T) {
	var b Buffer
	b.Push(Cell{Key: 'o'})
	b.Push(Cell{Key: 'a'})
	if b.HasFinalConsonant() {
		t.Fatalf("open syllable should report no final consonant")
	}
	b.Push(Cell{Key: 'n'})
	if !b.HasFinalConsonant() {
		t.Fatalf("closed syllable should report a final consonant")
	}
}

func TestRawViewWordAppliesCase(t *testing.T) {
	var r RawView
	r.Push('t', true)
	r.Push('e', false)
	r.Push('h', false)
	if r.Word() != "Teh" {
		t.Fatalf("got %q, want %q", r.Word(), "Teh")
	}
}
