package color

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		color OKLCH
		want  string
	}{
		{"anchor", OKLCH{L: 0.6, C: 0.15, H: 280}, "oklch(0.60 0.150 280)"},
		{"tapered", OKLCH{L: 0.95, C: 0.058125, H: 280}, "oklch(0.95 0.058 280)"},
		{"hue rounds", OKLCH{L: 0.2, C: 0.1, H: 359.6}, "oklch(0.20 0.100 360)"},
		{"exact half rounds up", OKLCH{L: 0.125, C: 0.0625, H: 280.5}, "oklch(0.13 0.063 281)"},
		{"zero", OKLCH{}, "oklch(0.00 0.000 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.color); got != tt.want {
				t.Errorf("Format(%+v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestFormatAlpha(t *testing.T) {
	got := FormatAlpha(OKLCH{L: 0.2, C: 0.045, H: 280}, 0.4)
	if got != "oklch(0.20 0.045 280 / 0.4)" {
		t.Fatalf("unexpected literal: %q", got)
	}

	got = FormatAlpha(OKLCH{L: 0.2, C: 0.045, H: 280}, 0.15)
	if got != "oklch(0.20 0.045 280 / 0.15)" {
		t.Fatalf("alpha should be written as given: %q", got)
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		value  float64
		digits int
		want   string
	}{
		{1.005, 2, "1.00"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{0.0625, 3, "0.063"},
		{0.005, 2, "0.01"},
		{0.0581, 3, "0.058"},
		{279.4, 0, "279"},
	}

	for _, tt := range tests {
		if got := toFixed(tt.value, tt.digits); got != tt.want {
			t.Errorf("toFixed(%v, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}
}
