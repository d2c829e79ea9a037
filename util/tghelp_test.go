package util

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitMessageShortText(t *testing.T) {
	parts := SplitMessage("hello", 100)
	if len(parts) != 1 || parts[0] != "hello" {
		t.Fatalf("SplitMessage short text = %v, want [hello]", parts)
	}
}

func TestSplitMessageEmpty(t *testing.T) {
	if parts := SplitMessage("", 100); len(parts) != 0 {
		t.Fatalf("SplitMessage empty text = %v, want none", parts)
	}
}

func TestSplitMessageBreaksAtNewline(t *testing.T) {
	parts := SplitMessage("aaaa\nbbbb\ncccc", 10)
	want := []string{"aaaa\nbbbb", "cccc"}
	if len(parts) != len(want) {
		t.Fatalf("SplitMessage = %v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, parts[i], want[i])
		}
	}
}

func TestSplitMessageHardCut(t *testing.T) {
	parts := SplitMessage("aaaaaaaaaabbbb", 10)
	want := []string{"aaaaaaaaaa", "bbbb"}
	if len(parts) != len(want) {
		t.Fatalf("SplitMessage = %v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, parts[i], want[i])
		}
	}
}

func TestSplitMessageKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("é", 5)
	parts := SplitMessage(text, 5)

	var rebuilt string
	for _, p := range parts {
		if !utf8.ValidString(p) {
			t.Fatalf("part %q is not valid UTF-8", p)
		}
		if len(p) > 5 {
			t.Fatalf("part %q exceeds the limit", p)
		}
		rebuilt += p
	}
	if rebuilt != text {
		t.Errorf("rebuilt %q, want %q", rebuilt, text)
	}
}

func TestSplitMessageDefaultLimit(t *testing.T) {
	text := strings.Repeat("x", MessageChunkLimit+1)
	parts := SplitMessage(text, 0)
	if len(parts) != 2 {
		t.Fatalf("SplitMessage with default limit = %d parts, want 2", len(parts))
	}
	if len(parts[0]) != MessageChunkLimit {
		t.Errorf("first part length = %d, want %d", len(parts[0]), MessageChunkLimit)
	}
}

func TestSplitMessageTrimsLeadingWhitespace(t *testing.T) {
	parts := SplitMessage("line one\n   tail", 9)
	if len(parts) != 2 {
		t.Fatalf("SplitMessage = %v, want 2 parts", parts)
	}
	if parts[1] != "tail" {
		t.Errorf("second part = %q, want %q", parts[1], "tail")
	}
}

func TestPnlDaysKeyboard(t *testing.T) {
	kb := PnlDaysKeyboard()
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("PnlDaysKeyboard rows = %d, want 2", len(kb.InlineKeyboard))
	}

	picks := kb.InlineKeyboard[0]
	wantData := []string{"pnlDays::1", "pnlDays::7", "pnlDays::30"}
	if len(picks) != len(wantData) {
		t.Fatalf("day picks = %d buttons, want %d", len(picks), len(wantData))
	}
	for i, want := range wantData {
		if picks[i].CallbackData != want {
			t.Errorf("pick %d callback data = %q, want %q", i, picks[i].CallbackData, want)
		}
	}

	if back := kb.InlineKeyboard[1]; len(back) != 2 {
		t.Fatalf("back row = %d buttons, want 2", len(back))
	}
}
