package rebuild

import (
	"testing"

	"github.com/nguyennhuanhle/gonhanh.org/internal/compose"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

func TestRenderPlainVowel(t *testing.T) {
	got := Render(compose.Cell{Key: 'a'})
	if got != 'a' {
		t.Fatalf("got %q, want %q", got, 'a')
	}
}

func TestRenderShapedAndMarked(t *testing.T) {
	got := Render(compose.Cell{Key: 'o', Tone: types.ShapeHorn, Mark: types.MarkSac})
	if got != 'ớ' {
		t.Fatalf("got %q, want %q", got, 'ớ')
	}
}

func TestRenderStroke(t *testing.T) {
	got := Render(compose.Cell{Key: 'd', Stroke: true})
	if got != 'đ' {
		t.Fatalf("got %q, want %q", got, 'đ')
	}
	gotCaps := Render(compose.Cell{Key: 'd', Stroke: true, Caps: true})
	if gotCaps != 'Đ' {
		t.Fatalf("got %q, want %q", gotCaps, 'Đ')
	}
}

func TestRebuildPlainAppendHasNoBackspace(t *testing.T) {
	var buf compose.Buffer
	buf.Push(compose.Cell{Key: 't'})
	preLen := buf.Len()
	buf.Push(compose.Cell{Key: 'o'})
	res := Rebuild(&buf, preLen, preLen)
	if res.BackspaceCount != 0 {
		t.Fatalf("backspace = %d, want 0", res.BackspaceCount)
	}
	if string(res.Chars) != "o" {
		t.Fatalf("chars = %q, want %q", string(res.Chars), "o")
	}
}

func TestRebuildInPlaceEditBackspacesFromOldLen(t *testing.T) {
	var buf compose.Buffer
	buf.Push(compose.Cell{Key: 't'})
	buf.Push(compose.Cell{Key: 'o'})
	buf.Push(compose.Cell{Key: 'a'})
	buf.Push(compose.Cell{Key: 'n'})
	preLen := buf.Len() // 4, unchanged by the mark assignment below

	c := buf.Get(2)
	c.Mark = types.MarkSac
	buf.ReplaceAt(2, c)

	res := Rebuild(&buf, preLen, 2)
	if res.BackspaceCount != 2 {
		t.Fatalf("backspace = %d, want 2", res.BackspaceCount)
	}
	if string(res.Chars) != "án" {
		t.Fatalf("chars = %q, want %q", string(res.Chars), "án")
	}
}

func TestRebuildEmptyEditIsZeroResult(t *testing.T) {
	var buf compose.Buffer
	buf.Push(compose.Cell{Key: 't'})
	res := Rebuild(&buf, 1, 1)
	if res.Action() != types.ActionNone {
		t.Fatalf("action = %v, want none", res.Action())
	}
}
