package locale

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"ja", JA},
		{"en", EN},
		{"zh", ZH},
		{"ko", KO},
		{"", JA},
		{"fr", JA},
		{"JA", JA}, // codes are case sensitive; unknown falls back
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTextResolve(t *testing.T) {
	full := Text{JA: "生ごみ", EN: "Food Waste", ZH: "厨余垃圾", KO: "음식물 쓰레기"}
	if got := full.Resolve(EN); got != "Food Waste" {
		t.Errorf("Resolve(EN) = %q", got)
	}

	jaOnly := Text{JA: "生ごみ"}
	if got := jaOnly.Resolve(ZH); got != "生ごみ" {
		t.Errorf("Resolve(ZH) should fall back to ja, got %q", got)
	}

	enOnly := Text{EN: "Food Waste"}
	if got := enOnly.Resolve(KO); got != "Food Waste" {
		t.Errorf("Resolve(KO) should fall back to any non-empty value, got %q", got)
	}

	var empty Text
	if got := empty.Resolve(JA); got != "" {
		t.Errorf("empty Text resolved to %q", got)
	}
}
