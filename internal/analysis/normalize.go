package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/maaidasong-coder/geointel/internal/inference"
)

// OCRPlaceholder stands in for OCR output when the endpoint failed or
// returned nothing recognizable. Downstream derivations treat it as absence
// of text.
const OCRPlaceholder = "N/A"

// FaceAttributes describes the first detected face. All fields are "unknown"
// when a face was detected without that attribute; the whole value is empty
// when no face was detected at all.
type FaceAttributes struct {
	Age       string `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Ethnicity string `json:"ethnicity,omitempty"`
}

func (f FaceAttributes) Empty() bool {
	return f == FaceAttributes{}
}

// Describe renders the attributes as a search-friendly sentence, mentioning
// only the attributes present.
func (f FaceAttributes) Describe() string {
	desc := "Person detected"
	if f.Age != "" {
		desc += ", age ~" + f.Age
	}
	if f.Gender != "" {
		desc += ", gender ~" + f.Gender
	}
	if f.Ethnicity != "" {
		desc += ", ethnicity ~" + f.Ethnicity
	}
	return desc
}

func (f FaceAttributes) pairs(sep string) []string {
	var parts []string
	if f.Age != "" {
		parts = append(parts, "age"+sep+f.Age)
	}
	if f.Gender != "" {
		parts = append(parts, "gender"+sep+f.Gender)
	}
	if f.Ethnicity != "" {
		parts = append(parts, "ethnicity"+sep+f.Ethnicity)
	}
	return parts
}

type faceRecord struct {
	Age       interface{} `json:"age"`
	Gender    string      `json:"gender"`
	Ethnicity string      `json:"ethnicity"`
}

// ExtractFaceAttributes pulls age, gender and ethnicity from the first
// detected face only. Error results and empty detections yield the empty
// value; missing attributes default to "unknown".
func ExtractFaceAttributes(res inference.Result) FaceAttributes {
	if res.Failed() {
		return FaceAttributes{}
	}
	var faces []faceRecord
	if err := json.Unmarshal(res.Data, &faces); err != nil || len(faces) == 0 {
		return FaceAttributes{}
	}
	first := faces[0]
	return FaceAttributes{
		Age:       attrString(first.Age),
		Gender:    orUnknown(first.Gender),
		Ethnicity: orUnknown(first.Ethnicity),
	}
}

func attrString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "unknown"
	case string:
		return orUnknown(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// NormalizeOCR flattens the OCR endpoint's response into plain text. The
// endpoint answers in one of three shapes: a bare string, an object with a
// text field, or a list of text-bearing blocks. Anything else normalizes to
// the placeholder, never to an empty marker type.
func NormalizeOCR(res inference.Result) string {
	if res.Failed() || len(res.Data) == 0 {
		return OCRPlaceholder
	}
	if text, ok := decodeOCRString(res.Data); ok {
		return text
	}
	if text, ok := decodeOCRObject(res.Data); ok {
		return text
	}
	if text, ok := decodeOCRBlocks(res.Data); ok {
		return text
	}
	return OCRPlaceholder
}

func decodeOCRString(data json.RawMessage) (string, bool) {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return "", false
	}
	return text, true
}

func decodeOCRObject(data json.RawMessage) (string, bool) {
	var obj struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Text == nil {
		return "", false
	}
	return *obj.Text, true
}

func decodeOCRBlocks(data json.RawMessage) (string, bool) {
	var blocks []json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil {
		return "", false
	}
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		var obj struct {
			Text *string `json:"text"`
		}
		if err := json.Unmarshal(block, &obj); err == nil && obj.Text != nil {
			lines = append(lines, *obj.Text)
			continue
		}
		var text string
		if err := json.Unmarshal(block, &text); err == nil {
			lines = append(lines, text)
			continue
		}
		// Not text-bearing: keep the block's own textual form.
		lines = append(lines, string(block))
	}
	return strings.Join(lines, "\n"), true
}

// SceneLabel is one classification candidate from the scene model.
type SceneLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// DecodeSceneLabels parses the scene endpoint's candidate list. The endpoint
// usually answers with an ordered list; a single labeled object is accepted
// as a one-element list. Errors and unexpected shapes decode to nil.
func DecodeSceneLabels(res inference.Result) []SceneLabel {
	if res.Failed() {
		return nil
	}
	var labels []SceneLabel
	if err := json.Unmarshal(res.Data, &labels); err == nil {
		return labels
	}
	var single SceneLabel
	if err := json.Unmarshal(res.Data, &single); err == nil && single.Label != "" {
		return []SceneLabel{single}
	}
	return nil
}

func hasOCRText(text string) bool {
	return text != "" && text != OCRPlaceholder
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
