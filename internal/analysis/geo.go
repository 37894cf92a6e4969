package analysis

import "strings"

const maxGeoGuesses = 5

const fallbackGeoGuess = "No explicit geo hints available"

// GeoGuesses derives heuristic, non-authoritative location hints from the
// scene labels, OCR text and face attributes: up to three scene hints, up
// to three text hints, and one demographic hint, capped at five. The result
// is never empty.
func GeoGuesses(scenes []SceneLabel, ocrText string, face FaceAttributes) []string {
	var guesses []string

	for i, scene := range scenes {
		if i >= 3 {
			break
		}
		if scene.Label != "" {
			guesses = append(guesses, "Possible location related to: "+scene.Label)
		}
	}

	if hasOCRText(ocrText) {
		lines := nonBlankLines(ocrText)
		if len(lines) > 3 {
			lines = lines[:3]
		}
		for _, line := range lines {
			guesses = append(guesses, "Text hint: "+line)
		}
	}

	if !face.Empty() {
		if parts := face.pairs(":"); len(parts) > 0 {
			guesses = append(guesses, "Demographic hint: "+strings.Join(parts, ", "))
		}
	}

	if len(guesses) == 0 {
		return []string{fallbackGeoGuess}
	}
	if len(guesses) > maxGeoGuesses {
		guesses = guesses[:maxGeoGuesses]
	}
	return guesses
}
