package canvas

import "testing"

func TestColor_Equals(t *testing.T) {
	if !NewColor(0.9, 0.6, 0.75).Equals(NewColor(0.9, 0.6, 0.75)) {
		t.Error("Expected identical colors to be equal")
	}
	if NewColor(0.9, 0.6, 0.75).Equals(NewColor(0.8, 0.6, 0.75)) {
		t.Error("Expected different colors not to be equal")
	}
}

func TestColor_Add(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)
	if got := c1.Add(c2); !got.Equals(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Expected (1.6, 0.7, 1.0), got %v", got)
	}
}

func TestColor_Subtract(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)
	if got := c1.Subtract(c2); !got.Equals(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Expected (0.2, 0.5, 0.5), got %v", got)
	}
}

func TestColor_Multiply(t *testing.T) {
	c1 := NewColor(1, 0.2, 0.4)
	c2 := NewColor(0.9, 1, 0.1)
	if got := c1.Multiply(c2); !got.Equals(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Expected (0.9, 0.2, 0.04), got %v", got)
	}
}

func TestColor_MultiplyScalar(t *testing.T) {
	c := NewColor(0.2, 0.3, 0.4)
	if got := c.MultiplyScalar(2); !got.Equals(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Expected (0.4, 0.6, 0.8), got %v", got)
	}
}

func TestColor_PPMString(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"mixed components", NewColor(1, 0.2, 0.4), "255 51 102"},
		{"truncated components", NewColor(0.9, 1, 0.1), "229 255 25"},
		{"clamped below", NewColor(-0.5, 0, 0), "0 0 0"},
		{"clamped above", NewColor(1.5, 1, 1), "255 255 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.PPMString(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
