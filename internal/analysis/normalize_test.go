package analysis

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/maaidasong-coder/geointel/internal/inference"
)

func okResult(body string) inference.Result {
	return inference.Result{Data: json.RawMessage(body)}
}

func failedResult() inference.Result {
	return inference.Result{Err: "endpoint returned status 500"}
}

func TestNormalizeOCR(t *testing.T) {
	tests := []struct {
		name string
		res  inference.Result
		want string
	}{
		{
			name: "bare string",
			res:  okResult(`"STOP AHEAD"`),
			want: "STOP AHEAD",
		},
		{
			name: "object with text field",
			res:  okResult(`{"text":"Welcome to Springfield"}`),
			want: "Welcome to Springfield",
		},
		{
			name: "list of text blocks",
			res:  okResult(`[{"text":"Main St"},{"text":"Open 24h"}]`),
			want: "Main St\nOpen 24h",
		},
		{
			name: "list of bare strings",
			res:  okResult(`["one","two"]`),
			want: "one\ntwo",
		},
		{
			name: "mixed list keeps unrecognized blocks verbatim",
			res:  okResult(`[{"text":"Main St"},{"label":"sign"}]`),
			want: "Main St\n{\"label\":\"sign\"}",
		},
		{
			name: "empty string stays empty",
			res:  okResult(`""`),
			want: "",
		},
		{
			name: "failed result",
			res:  failedResult(),
			want: OCRPlaceholder,
		},
		{
			name: "empty data",
			res:  inference.Result{},
			want: OCRPlaceholder,
		},
		{
			name: "unrecognized shape",
			res:  okResult(`42`),
			want: OCRPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeOCR(tt.res); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractFaceAttributes(t *testing.T) {
	tests := []struct {
		name string
		res  inference.Result
		want FaceAttributes
	}{
		{
			name: "complete first face",
			res:  okResult(`[{"age":34,"gender":"male","ethnicity":"unclear"}]`),
			want: FaceAttributes{Age: "34", Gender: "male", Ethnicity: "unclear"},
		},
		{
			name: "only first face is used",
			res:  okResult(`[{"age":"20-30","gender":"female"},{"age":60,"gender":"male"}]`),
			want: FaceAttributes{Age: "20-30", Gender: "female", Ethnicity: "unknown"},
		},
		{
			name: "missing attributes default to unknown",
			res:  okResult(`[{}]`),
			want: FaceAttributes{Age: "unknown", Gender: "unknown", Ethnicity: "unknown"},
		},
		{
			name: "fractional age keeps precision",
			res:  okResult(`[{"age":27.5}]`),
			want: FaceAttributes{Age: "27.5", Gender: "unknown", Ethnicity: "unknown"},
		},
		{
			name: "no faces detected",
			res:  okResult(`[]`),
			want: FaceAttributes{},
		},
		{
			name: "failed result",
			res:  failedResult(),
			want: FaceAttributes{},
		},
		{
			name: "unexpected shape",
			res:  okResult(`{"error":"bad input"}`),
			want: FaceAttributes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFaceAttributes(tt.res)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFaceAttributesDescribe(t *testing.T) {
	face := FaceAttributes{Age: "34", Gender: "male", Ethnicity: "unknown"}
	want := "Person detected, age ~34, gender ~male, ethnicity ~unknown"
	if got := face.Describe(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	partial := FaceAttributes{Age: "34"}
	if got := partial.Describe(); got != "Person detected, age ~34" {
		t.Errorf("unexpected partial description: %q", got)
	}
}

func TestDecodeSceneLabels(t *testing.T) {
	tests := []struct {
		name string
		res  inference.Result
		want []SceneLabel
	}{
		{
			name: "candidate list",
			res:  okResult(`[{"label":"beach","score":0.91},{"label":"coast","score":0.05}]`),
			want: []SceneLabel{{Label: "beach", Score: 0.91}, {Label: "coast", Score: 0.05}},
		},
		{
			name: "single object becomes one-element list",
			res:  okResult(`{"label":"street","score":0.7}`),
			want: []SceneLabel{{Label: "street", Score: 0.7}},
		},
		{
			name: "failed result",
			res:  failedResult(),
			want: nil,
		},
		{
			name: "unlabeled object",
			res:  okResult(`{"score":0.7}`),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeSceneLabels(tt.res)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
