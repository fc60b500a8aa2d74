package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"blue", "1", "white/blue"},
		{"red", "12", "red/yellow"},
	}, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"blue   1  white/blue",
		"red   12  red/yellow",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	if got[1] != "ab    y" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}

func TestKeyValues(t *testing.T) {
	got := KeyValues([]Field{
		{Key: "cursor_pos", Value: 3},
		{Key: "result", Value: "None"},
	})
	if got[0] != "cursor_pos = 3" {
		t.Fatalf("unexpected first line %q", got[0])
	}
	if got[1] != "result     = None" {
		t.Fatalf("unexpected second line %q", got[1])
	}
}
