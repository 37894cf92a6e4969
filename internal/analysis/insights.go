package analysis

import (
	"fmt"
	"strings"

	"github.com/maaidasong-coder/geointel/internal/search"
)

const noInsights = "No AI insights available."

const ocrExcerptLen = 100

// Insights synthesizes the case summary line by concatenating whichever
// facts are available, in fixed order: top scene label, an OCR excerpt, the
// face attributes, and the total hit count. With no facts at all it returns
// the fixed no-insights string; the result is never empty.
func Insights(ocrText string, scenes []SceneLabel, face FaceAttributes, results []search.QueryResult) string {
	var facts []string

	if len(scenes) > 0 && scenes[0].Label != "" {
		facts = append(facts, "Scene: "+scenes[0].Label)
	}

	if hasOCRText(ocrText) {
		excerpt := ocrText
		if len(excerpt) > ocrExcerptLen {
			excerpt = excerpt[:ocrExcerptLen]
		}
		facts = append(facts, "OCR text: "+excerpt+"...")
	}

	if !face.Empty() {
		if parts := face.pairs(": "); len(parts) > 0 {
			facts = append(facts, "Face attributes: "+strings.Join(parts, ", "))
		}
	}

	if len(results) > 0 {
		total := 0
		for _, r := range results {
			total += len(r.Hits)
		}
		facts = append(facts, fmt.Sprintf("Found %d search references", total))
	}

	if len(facts) == 0 {
		return noInsights
	}
	return strings.Join(facts, " ")
}
