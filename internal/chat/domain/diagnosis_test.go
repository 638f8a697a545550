package domain

import "testing"

func TestNormalizeDiagnosisKeyVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  map[string]any
		want Diagnosis
	}{
		{
			"canonical keys",
			map[string]any{"crop": "Tomato", "disease": "Early blight", "confidence": 0.93},
			Diagnosis{Crop: "Tomato", Disease: "Early blight", Confidence: 0.93},
		},
		{
			"alternate keys",
			map[string]any{"plant": "Rose", "condition": "Black spot", "confidence": "87.5"},
			Diagnosis{Crop: "Rose", Disease: "Black spot", Confidence: 87.5},
		},
		{
			"cropName and diseaseName",
			map[string]any{"cropName": "Basil", "diseaseName": "Downy mildew"},
			Diagnosis{Crop: "Basil", Disease: "Downy mildew"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDiagnosis(tc.raw)
			if got == nil {
				t.Fatal("expected a diagnosis, got nil")
			}
			if *got != tc.want {
				t.Fatalf("got %+v, want %+v", *got, tc.want)
			}
		})
	}
}

func TestNormalizeDiagnosisEmptyPayload(t *testing.T) {
	t.Parallel()

	if got := NormalizeDiagnosis(nil); got != nil {
		t.Fatalf("expected nil for nil payload, got %+v", got)
	}
	if got := NormalizeDiagnosis(map[string]any{"confidence": 0.5}); got != nil {
		t.Fatalf("expected nil when no crop or disease present, got %+v", got)
	}
}
