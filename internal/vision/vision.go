package vision

import (
	"context"
	"io"
)

// AnalysisPrompt is the shared prompt used by all vision adapters.
const AnalysisPrompt = `You are assisting a vehicle inspector. List every visible defect on the
vehicle in this photo: body damage, paint problems, glass damage, tire and rim
problems, or visible engine issues.
For each defect provide: the part, the defect type, the severity
(light, medium or severe) and a short note.
Prefer these part ids when they fit: front_bumper, rear_bumper, hood, trunk,
roof, windshield, rear_glass, front_door_left, front_door_right,
rear_door_left, rear_door_right, fender_left, fender_right, mirror_left,
mirror_right, tire_front_left, tire_front_right, tire_rear_left,
tire_rear_right, engine.
Prefer these defect ids when they fit: scratch_light, scratch_deep,
dent_light, dent_severe, crack, fracture, paint_non_original,
color_mismatch, rust, misalignment, tire_worn, tire_flat, rim_damaged.
Respond in plain text, one defect per line,
format: part | defect | severity | notes
If there is no visible defect, respond with nothing.`

// DamageAnalyzer proposes defects seen in a photo.
type DamageAnalyzer interface {
	Analyze(ctx context.Context, r io.Reader, mimeType string) (*AnalysisResult, error)
}

type AnalysisResult struct {
	Defects     []DetectedDefect
	RawResponse string
}

type DetectedDefect struct {
	PartName   string `json:"partName"`
	DefectType string `json:"defectType"`
	Severity   string `json:"severity"`
	Notes      string `json:"notes"`
	// VehicleArea is filled from the catalog when PartName is a known part.
	VehicleArea string `json:"vehicleArea,omitempty"`
}
