package template

import (
	"strings"
	"testing"
)

func TestRanderStart(t *testing.T) {
	out, err := RanderStart("Alice")
	if err != nil {
		t.Fatalf("RanderStart: %v", err)
	}
	if !strings.Contains(out, "👋 Hello Alice!") {
		t.Errorf("greeting missing\n%s", out)
	}
	if !strings.Contains(out, "Welcome to <b>VybeBot</b>") {
		t.Errorf("welcome line missing\n%s", out)
	}
}

func TestRanderStartEscapesName(t *testing.T) {
	out, err := RanderStart("<Bob>")
	if err != nil {
		t.Fatalf("RanderStart: %v", err)
	}
	if !strings.Contains(out, "Hello &lt;Bob&gt;!") {
		t.Errorf("name should be HTML escaped\n%s", out)
	}
}

func TestRanderAlpha(t *testing.T) {
	out, err := RanderAlpha("https://vybe.fyi")
	if err != nil {
		t.Fatalf("RanderAlpha: %v", err)
	}
	if !strings.Contains(out, "🌐 https://vybe.fyi") {
		t.Errorf("alpha url missing\n%s", out)
	}
	if !strings.Contains(out, "<i>Alpha starts here.</i>") {
		t.Errorf("closing line missing\n%s", out)
	}
}

func TestRanderHelp(t *testing.T) {
	out, err := RanderHelp("https://vybe.fyi")
	if err != nil {
		t.Fatalf("RanderHelp: %v", err)
	}
	for _, want := range []string{
		"VybeBot Help Menu",
		`<a href="https://vybe.fyi">vybe.fyi</a>`,
		"Top Holders",
		"Main Menu",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q\n%s", want, out)
		}
	}
}
