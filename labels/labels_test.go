package labels

import (
	"testing"
)

func TestPrettify(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{"Tomato___Late_blight", "Tomato - Late blight"},
		{"Tomato_Late_Blight", "Tomato Late Blight"},
		{"Corn___Common_rust", "Corn - Common rust"},
		{"Apple___healthy", "Apple - healthy"},
		{"Grape___Leaf_blight_(Isariopsis_Leaf_Spot)", "Grape - Leaf blight (Isariopsis Leaf Spot)"},
		{"healthy", "healthy"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			if got := Prettify(tc.label); got != tc.expected {
				t.Errorf("Prettify(%q) = %q, want %q", tc.label, got, tc.expected)
			}
		})
	}
}

func TestDiseasePart(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{"Tomato___Late_blight", "Late_blight"},
		{"Tomato_Late_Blight", "Tomato_Late_Blight"},
		{"Potato___Early_blight", "Early_blight"},
		{"healthy", "healthy"},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			if got := DiseasePart(tc.label); got != tc.expected {
				t.Errorf("DiseasePart(%q) = %q, want %q", tc.label, got, tc.expected)
			}
		})
	}
}

func TestKey(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{"Tomato___Late_blight", "tomato late blight"},
		{"Tomato_Late_Blight", "tomato late blight"},
		{"Tomato Late Blight", "tomato late blight"},
		{"Corn_(maize)___Common_rust_", "corn maize common rust"},
		{"", ""},
		{"___", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			if got := Key(tc.label); got != tc.expected {
				t.Errorf("Key(%q) = %q, want %q", tc.label, got, tc.expected)
			}
		})
	}
}

func TestValidateProbability(t *testing.T) {
	if err := ValidateProbability(0.5); err != nil {
		t.Errorf("ValidateProbability(0.5) = %v, want nil", err)
	}
	if err := ValidateProbability(0); err != nil {
		t.Errorf("ValidateProbability(0) = %v, want nil", err)
	}
	if err := ValidateProbability(1); err != nil {
		t.Errorf("ValidateProbability(1) = %v, want nil", err)
	}
	if err := ValidateProbability(1.01); err == nil {
		t.Error("ValidateProbability(1.01) = nil, want error")
	}
	if err := ValidateProbability(-0.01); err == nil {
		t.Error("ValidateProbability(-0.01) = nil, want error")
	}
}
