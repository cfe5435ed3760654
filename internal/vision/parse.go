package vision

import (
	"strings"

	"github.com/vbonduro/carcheck/internal/catalog"
)

// defaultSeverity is assigned when the model omits the severity or answers
// with a word outside the catalog.
const defaultSeverity = "medium"

// ParseResponse parses vision model response in format:
// part | defect | severity | notes. One defect per line.
func ParseResponse(raw string) []DetectedDefect {
	lines := strings.Split(raw, "\n")
	defects := make([]DetectedDefect, 0)

	for _, line := range lines {
		if d := ParseLine(line); d != nil {
			defects = append(defects, *d)
		}
	}

	return defects
}

// ParseLine parses a single "part | defect | severity | notes" line. It
// returns nil for blank lines, model preamble and lines without a pipe.
func ParseLine(line string) *DetectedDefect {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*• ")
	if line == "" || !strings.Contains(line, "|") {
		return nil
	}

	if strings.HasPrefix(line, "Here") || strings.HasPrefix(line, "I see") || strings.HasPrefix(line, "Based on") {
		return nil
	}

	parts := strings.Split(line, "|")
	d := &DetectedDefect{
		PartName: normaliseID(parts[0]),
		Severity: defaultSeverity,
	}
	if d.PartName == "" {
		return nil
	}
	if len(parts) >= 2 {
		d.DefectType = normaliseID(parts[1])
	}
	if len(parts) >= 3 {
		if s := strings.ToLower(strings.TrimSpace(parts[2])); catalog.IsSeverity(s) {
			d.Severity = s
		}
	}
	if len(parts) >= 4 {
		d.Notes = strings.TrimSpace(strings.Join(parts[3:], "|"))
	}
	if p, ok := catalog.LookupPart(d.PartName); ok {
		d.VehicleArea = p.Area
	}
	return d
}

// normaliseID maps "Front Bumper" to the catalog id "front_bumper" when such
// an id exists and otherwise returns the trimmed text unchanged.
func normaliseID(s string) string {
	s = strings.TrimSpace(s)
	id := strings.ReplaceAll(strings.ToLower(s), " ", "_")
	if _, ok := catalog.LookupPart(id); ok {
		return id
	}
	if _, ok := catalog.LookupDefectType(id); ok {
		return id
	}
	return s
}
