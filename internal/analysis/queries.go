package analysis

import "strings"

// DefaultQueryCap bounds the synthesized query list when no cap is
// configured.
const DefaultQueryCap = 10

var fallbackQueries = []string{
	"image forensic analysis",
	"possible identification from image",
}

// BuildQueries derives search queries from user notes, OCR text, scene
// labels and face attributes, in that order: notes first, then the first
// five OCR lines combined plus up to three individual lines, up to five
// scene labels, and a person-description sentence. The result is
// deduplicated preserving first occurrence, capped at max, and never empty:
// with nothing to go on it falls back to a fixed query pair.
func BuildQueries(ocrText string, scenes []SceneLabel, notes string, face FaceAttributes, max int) []string {
	if max <= 0 {
		max = DefaultQueryCap
	}

	var queries []string
	if notes != "" {
		queries = append(queries, notes)
	}

	if hasOCRText(ocrText) {
		lines := nonBlankLines(ocrText)
		if len(lines) > 0 {
			combined := lines
			if len(combined) > 5 {
				combined = combined[:5]
			}
			queries = append(queries, strings.Join(combined, " "))

			individual := lines
			if len(individual) > 3 {
				individual = individual[:3]
			}
			queries = append(queries, individual...)
		}
	}

	for i, scene := range scenes {
		if i >= 5 {
			break
		}
		if scene.Label != "" {
			queries = append(queries, scene.Label)
		}
	}

	if !face.Empty() {
		queries = append(queries, face.Describe())
	}

	queries = dedupe(queries)
	if len(queries) == 0 {
		return append([]string(nil), fallbackQueries...)
	}
	if len(queries) > max {
		queries = queries[:max]
	}
	return queries
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
