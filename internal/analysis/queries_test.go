package analysis

import (
	"reflect"
	"testing"
)

func TestBuildQueries(t *testing.T) {
	scenes := []SceneLabel{
		{Label: "beach", Score: 0.9},
		{Label: "coast", Score: 0.05},
	}
	face := FaceAttributes{Age: "34", Gender: "male", Ethnicity: "unknown"}

	t.Run("full ordering", func(t *testing.T) {
		got := BuildQueries("Main St\nOpen 24h", scenes, "suspect photo", face, 0)
		want := []string{
			"suspect photo",
			"Main St Open 24h",
			"Main St",
			"Open 24h",
			"beach",
			"coast",
			"Person detected, age ~34, gender ~male, ethnicity ~unknown",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("OCR line limits", func(t *testing.T) {
		got := BuildQueries("a\nb\nc\nd\ne\nf", nil, "", FaceAttributes{}, 0)
		// Five combined lines, then the first three individually.
		want := []string{"a b c d e", "a", "b", "c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("blank OCR lines are skipped", func(t *testing.T) {
		got := BuildQueries("Main St\n\n   \nOpen 24h", nil, "", FaceAttributes{}, 0)
		want := []string{"Main St Open 24h", "Main St", "Open 24h"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("placeholder OCR contributes nothing", func(t *testing.T) {
		got := BuildQueries(OCRPlaceholder, scenes, "", FaceAttributes{}, 0)
		want := []string{"beach", "coast"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("scene labels capped at five", func(t *testing.T) {
		many := []SceneLabel{
			{Label: "s1"}, {Label: "s2"}, {Label: "s3"},
			{Label: "s4"}, {Label: "s5"}, {Label: "s6"},
		}
		got := BuildQueries("", many, "", FaceAttributes{}, 0)
		want := []string{"s1", "s2", "s3", "s4", "s5"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("deduplicated preserving first occurrence", func(t *testing.T) {
		got := BuildQueries("beach", scenes, "beach", FaceAttributes{}, 0)
		want := []string{"beach", "coast"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("cap applies after dedup", func(t *testing.T) {
		got := BuildQueries("a\nb\nc", scenes, "notes", face, 3)
		want := []string{"notes", "a b c", "a"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("fallback when nothing to derive", func(t *testing.T) {
		got := BuildQueries("", nil, "", FaceAttributes{}, 0)
		if !reflect.DeepEqual(got, fallbackQueries) {
			t.Errorf("expected fallback queries, got %v", got)
		}
	})
}
