package floe

import "testing"

func TestNewTextBounds(t *testing.T) {
	// The reference face advances 7px per glyph at its native 13px height.
	n, err := NewText("ab", FontStyle{Family: "Arial", Size: 13, Color: Black})
	if err != nil {
		t.Fatal(err)
	}
	b := n.Bounds()
	assertNear(t, "width", b.W, 14)
	assertNear(t, "height", b.H, 13)
	assertPoint(t, "top-left", b.TopLeftPoint(), Pt(0, 0))
}

func TestTextMeasurementScalesWithSize(t *testing.T) {
	small, err := NewText("hello", FontStyle{Size: 10, Color: Black})
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewText("hello", FontStyle{Size: 20, Color: Black})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "width ratio", large.Bounds().W/small.Bounds().W, 2)
	assertNear(t, "height", large.Bounds().H, 20)
}

func TestTextLayoutIgnoresFamily(t *testing.T) {
	a, _ := NewText("layout", FontStyle{Family: "Arial", Size: 16, Color: Black})
	b, _ := NewText("layout", FontStyle{Family: "Menlo", Size: 16, Color: Black})
	assertBounds(t, "bounds", a.Bounds(), b.Bounds())
}

func TestNewTextValidation(t *testing.T) {
	if _, err := NewText("x", FontStyle{Size: 0}); err == nil {
		t.Error("zero size should fail")
	}
	if _, err := NewText("x", FontStyle{Size: -4}); err == nil {
		t.Error("negative size should fail")
	}
}

func TestWithTextRemeasures(t *testing.T) {
	n, err := NewText("ab", FontStyle{Size: 13, Color: Black})
	if err != nil {
		t.Fatal(err)
	}
	wider := n.WithText("abcd")
	assertNear(t, "new width", wider.Bounds().W, 28)
	assertNear(t, "old width unchanged", n.Bounds().W, 14)
	if wider.Text() != "abcd" {
		t.Errorf("Text = %q", wider.Text())
	}
}
