package labels

import (
	"errors"
	"strings"
	"unicode"
)

// Classifier class names follow the PlantVillage convention
// "<Crop>___<Disease>" with underscores inside each part, e.g.
// "Tomato___Late_blight". Some deployments emit plain labels such as
// "Tomato_Late_Blight" with no crop separator; all helpers here accept both.

// Prettify converts a raw class name into a human-readable disease name:
// the crop separator becomes " - " and underscores become spaces.
func Prettify(label string) string {
	name := strings.ReplaceAll(label, "___", " - ")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// DiseasePart returns the portion of the class name after the crop
// separator, or the whole label when there is none.
func DiseasePart(label string) string {
	if idx := strings.Index(label, "___"); idx >= 0 {
		return label[idx+3:]
	}
	return label
}

// Key canonicalizes a label for knowledge-base lookup: lowercase with runs
// of non-alphanumeric characters collapsed to single spaces.
func Key(label string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// ValidateProbability checks a classifier probability is within [0, 1].
func ValidateProbability(p float64) error {
	if p < 0 || p > 1 {
		return errors.New("probability must be between 0 and 1")
	}
	return nil
}
