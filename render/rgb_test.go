package render

import (
	"testing"
)

func TestBlendEarlyOuts(t *testing.T) {
	dst := RGB{10, 20, 30}
	src := RGB{200, 100, 50}

	if got := Blend(dst, src, 1.0); got != src {
		t.Errorf("Blend alpha 1 = %v, want src %v", got, src)
	}
	if got := Blend(dst, src, 0.0); got != dst {
		t.Errorf("Blend alpha 0 = %v, want dst %v", got, dst)
	}
}

func TestBlendHalf(t *testing.T) {
	got := Blend(RGB{0, 0, 0}, RGB{200, 100, 50}, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Blend 0.5 = %v, want {100 50 25}", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{200, 200, 200}, RGB{100, 100, 100}, 1.0)
	if got != (RGB{255, 255, 255}) {
		t.Errorf("Add clamp = %v, want white", got)
	}
	dst := RGB{10, 20, 30}
	if got := Add(dst, RGB{50, 50, 50}, 0.0); got != dst {
		t.Errorf("Add alpha 0 = %v, want dst %v", got, dst)
	}
}

func TestMax(t *testing.T) {
	got := Max(RGB{10, 200, 30}, RGB{100, 20, 30})
	if got != (RGB{100, 200, 30}) {
		t.Errorf("Max = %v, want {100 200 30}", got)
	}
}

func TestScaleClamps(t *testing.T) {
	if got := Scale(RGB{100, 100, 100}, 0.5); got != (RGB{50, 50, 50}) {
		t.Errorf("Scale 0.5 = %v, want {50 50 50}", got)
	}
	if got := Scale(RGB{200, 200, 200}, 2.0); got != (RGB{255, 255, 255}) {
		t.Errorf("Scale 2.0 = %v, want white", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Lerp t=0.5 = %v, want {100 50 25}", got)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("ff9a3c")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if got != (RGB{0xff, 0x9a, 0x3c}) {
		t.Errorf("ParseHex = %v, want {255 154 60}", got)
	}

	got, err = ParseHex("#102030")
	if err != nil {
		t.Fatalf("ParseHex with #: %v", err)
	}
	if got != (RGB{0x10, 0x20, 0x30}) {
		t.Errorf("ParseHex # = %v, want {16 32 48}", got)
	}

	for _, bad := range []string{"", "fff", "gggggg", "1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}
