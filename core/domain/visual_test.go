// ABOUTME: Tests for the RGB color hex rendering
// ABOUTME: Used by the brand color endpoint to populate design colors

package domain

import "testing"

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		color RGBColor
		want  string
	}{
		{"black", RGBColor{0, 0, 0}, "#000000"},
		{"white", RGBColor{255, 255, 255}, "#ffffff"},
		{"red", RGBColor{255, 0, 0}, "#ff0000"},
		{"mixed", RGBColor{18, 52, 86}, "#123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}
