package linescan

import (
	"strings"
	"testing"

	"github.com/tsawler/marknav/model"
)

func scanText(t *testing.T, text string, cfg Config) []Line {
	t.Helper()
	return Scan(model.NewDocument(text, "test"), cfg)
}

func kindsOf(lines []Line) []Kind {
	kinds := make([]Kind, len(lines))
	for i, ln := range lines {
		kinds[i] = ln.Kind
	}
	return kinds
}

func TestScanKinds(t *testing.T) {
	text := strings.Join([]string{
		"# Title",
		"",
		"Some prose here.",
		"> quoted",
		"- item one",
		"| a | b |",
		"---",
		"```go",
		"x := 1",
		"```",
	}, "\n")

	want := []Kind{
		KindHeading,
		KindBlank,
		KindPlain,
		KindBlockquote,
		KindListItem,
		KindTableRow,
		KindSeparator,
		KindFence,
		KindCode,
		KindFence,
	}

	lines := scanText(t, text, Config{})
	got := kindsOf(lines)
	if len(got) != len(want) {
		t.Fatalf("line count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanSpans(t *testing.T) {
	lines := scanText(t, "ab\ncd\n", Config{})

	if got, want := lines[0].Span, (model.Span{Start: 0, End: 3}); got != want {
		t.Errorf("line 0 Span = %v, want %v", got, want)
	}
	if got, want := lines[0].Content, (model.Span{Start: 0, End: 2}); got != want {
		t.Errorf("line 0 Content = %v, want %v", got, want)
	}
	if got, want := lines[2].Kind, KindBlank; got != want {
		t.Errorf("trailing line kind = %v, want %v", got, want)
	}
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		level int
	}{
		{"h1", "# x", KindHeading, 1},
		{"h6", "###### x", KindHeading, 6},
		{"indented", "   ## x", KindHeading, 2},
		{"tab after hashes", "#\tx", KindHeading, 1},
		{"bare hash", "#", KindHeading, 1},
		{"seven hashes", "####### x", KindPlain, 0},
		{"no space", "#x", KindPlain, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := scanText(t, tt.text, Config{})[0]
			if ln.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", ln.Kind, tt.kind)
			}
			if ln.Level != tt.level {
				t.Errorf("Level = %d, want %d", ln.Level, tt.level)
			}
		})
	}
}

func TestListItems(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     Kind
		listItem bool
		ordered  bool
		checkbox bool
		checked  bool
	}{
		{"dash", "- item", KindListItem, true, false, false, false},
		{"star", "* item", KindListItem, true, false, false, false},
		{"plus", "+ item", KindListItem, true, false, false, false},
		{"ordered", "12. item", KindListItem, true, true, false, false},
		{"bare marker", "-", KindListItem, true, false, false, false},
		{"unchecked box", "- [ ] todo", KindListItem, true, false, true, false},
		{"checked box", "- [x] done", KindListItem, true, false, true, true},
		{"upper checked", "- [X] done", KindListItem, true, false, true, true},
		{"box no space", "-[x] done", KindListItem, false, false, true, true},
		{"ordered box", "1.[ ] todo", KindListItem, false, true, true, false},
		{"not a box", "- [y] huh", KindListItem, true, false, false, false},
		{"no marker space", "-item", KindPlain, false, false, false, false},
		{"digits no dot", "12 items", KindPlain, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := scanText(t, tt.text, Config{})[0]
			if ln.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", ln.Kind, tt.kind)
			}
			if ln.ListItem != tt.listItem || ln.Ordered != tt.ordered {
				t.Errorf("ListItem/Ordered = %v/%v, want %v/%v", ln.ListItem, ln.Ordered, tt.listItem, tt.ordered)
			}
			if ln.Checkbox != tt.checkbox || ln.Checked != tt.checked {
				t.Errorf("Checkbox/Checked = %v/%v, want %v/%v", ln.Checkbox, ln.Checked, tt.checkbox, tt.checked)
			}
		})
	}
}

func TestBlockquotes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		depth int
	}{
		{"simple", "> quoted", KindBlockquote, 1},
		{"bare marker", ">", KindBlockquote, 1},
		{"nested spaced", "> > deep", KindBlockquote, 2},
		{"nested tight", ">> deep", KindBlockquote, 2},
		{"triple", "> > > deepest", KindBlockquote, 3},
		{"no space", ">word", KindPlain, 0},
		{"tight no space", ">>word", KindPlain, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := scanText(t, tt.text, Config{})[0]
			if ln.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", ln.Kind, tt.kind)
			}
			if ln.Depth != tt.depth {
				t.Errorf("Depth = %d, want %d", ln.Depth, tt.depth)
			}
		})
	}
}

func TestSeparators(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{"dashes", "---", KindSeparator},
		{"spaced dashes", "- - -", KindSeparator},
		{"stars", "***", KindSeparator},
		{"underscores", "___", KindSeparator},
		{"long", "----------", KindSeparator},
		{"mixed tail", "*** --_", KindSeparator},
		{"indented", "  ---", KindSeparator},
		{"two only", "--", KindPlain},
		{"mixed head", "-*-", KindPlain},
		{"trailing text", "--- note", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := scanText(t, tt.text, Config{})[0]
			if ln.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", ln.Kind, tt.kind)
			}
		})
	}
}

func TestSeparatorBeatsListMarker(t *testing.T) {
	// "- - -" carries a valid list marker but reads as a rule.
	ln := scanText(t, "- - -", Config{})[0]
	if ln.Kind != KindSeparator {
		t.Fatalf("kind = %v, want %v", ln.Kind, KindSeparator)
	}
}

func TestFences(t *testing.T) {
	text := strings.Join([]string{
		"```go",
		"# not a heading",
		"",
		"````",
		"after",
	}, "\n")

	lines := scanText(t, text, Config{})

	want := []Kind{KindFence, KindCode, KindCode, KindFence, KindPlain}
	for i, k := range want {
		if lines[i].Kind != k {
			t.Errorf("line %d kind = %v, want %v", i, lines[i].Kind, k)
		}
	}
	if lines[0].FenceChar != '`' || lines[0].FenceLen != 3 {
		t.Errorf("open fence = %c x%d, want ` x3", lines[0].FenceChar, lines[0].FenceLen)
	}
	if lines[3].FenceLen != 4 {
		t.Errorf("close fence FenceLen = %d, want 4", lines[3].FenceLen)
	}
}

func TestUnclosedFence(t *testing.T) {
	lines := scanText(t, "```\ncode\nmore", Config{})
	want := []Kind{KindFence, KindCode, KindCode}
	for i, k := range want {
		if lines[i].Kind != k {
			t.Errorf("line %d kind = %v, want %v", i, lines[i].Kind, k)
		}
	}
}

func TestTildeFences(t *testing.T) {
	text := "~~~\ncode\n~~~"

	lines := scanText(t, text, Config{})
	if lines[0].Kind != KindPlain {
		t.Errorf("tilde fence off: kind = %v, want %v", lines[0].Kind, KindPlain)
	}

	lines = scanText(t, text, Config{TildeFences: true})
	want := []Kind{KindFence, KindCode, KindFence}
	for i, k := range want {
		if lines[i].Kind != k {
			t.Errorf("tilde fence on: line %d kind = %v, want %v", i, lines[i].Kind, k)
		}
	}
	if lines[0].FenceChar != '~' {
		t.Errorf("FenceChar = %c, want ~", lines[0].FenceChar)
	}
}

func TestMismatchedFenceChars(t *testing.T) {
	// A tilde run does not close a backtick fence.
	lines := scanText(t, "```\n~~~\nx\n```", Config{TildeFences: true})
	want := []Kind{KindFence, KindCode, KindCode, KindFence}
	for i, k := range want {
		if lines[i].Kind != k {
			t.Errorf("line %d kind = %v, want %v", i, lines[i].Kind, k)
		}
	}
}

func TestIndent(t *testing.T) {
	ln := scanText(t, "  \t- item", Config{})[0]
	if ln.Kind != KindListItem {
		t.Fatalf("kind = %v, want %v", ln.Kind, KindListItem)
	}
	if ln.Indent != 3 {
		t.Errorf("Indent = %d, want 3", ln.Indent)
	}
}
