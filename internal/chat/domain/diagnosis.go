package domain

import "strconv"

// Diagnosis is the canonical form of an image-detection result. The
// services producing these are inconsistent about key names
// (crop/cropName/plant, disease/diseaseName/condition), so every raw
// payload funnels through Normalize before anything else touches it.
type Diagnosis struct {
	Crop       string  `json:"crop"`
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}

// NormalizeDiagnosis converts a loose upstream payload into the
// canonical shape. Returns nil when the payload carries no usable
// identification at all.
func NormalizeDiagnosis(raw map[string]any) *Diagnosis {
	if raw == nil {
		return nil
	}

	d := &Diagnosis{
		Crop:       firstString(raw, "crop", "cropName", "plant", "plantName"),
		Disease:    firstString(raw, "disease", "diseaseName", "condition"),
		ImageURL:   firstString(raw, "imageUrl", "image_url"),
		Confidence: numeric(raw, "confidence"),
	}

	if d.Crop == "" && d.Disease == "" {
		return nil
	}
	return d
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// numeric accepts both number and string encodings; the model service
// has been seen returning either.
func numeric(raw map[string]any, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
