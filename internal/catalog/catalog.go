// Package catalog holds the fixed vocabulary of the vehicle diagram: the
// parts an inspector can mark, the defect types, the severity scale and the
// diagram areas.
package catalog

type Part struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Area  string `json:"area"`
}

type DefectType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Severity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Area struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	ViewBox string `json:"viewBox"`
}

var Parts = []Part{
	{ID: "front_door_right", Label: "Front door (right)", Area: "right"},
	{ID: "front_door_left", Label: "Front door (left)", Area: "left"},
	{ID: "rear_door_right", Label: "Rear door (right)", Area: "right"},
	{ID: "rear_door_left", Label: "Rear door (left)", Area: "left"},
	{ID: "fender_right", Label: "Fender (right)", Area: "right"},
	{ID: "fender_left", Label: "Fender (left)", Area: "left"},
	{ID: "front_bumper", Label: "Front bumper", Area: "front"},
	{ID: "rear_bumper", Label: "Rear bumper", Area: "back"},
	{ID: "trunk", Label: "Trunk", Area: "back"},
	{ID: "hood", Label: "Hood", Area: "front"},
	{ID: "roof", Label: "Roof", Area: "roof"},
	{ID: "pillar_a_right", Label: "A-pillar (right)", Area: "right"},
	{ID: "pillar_a_left", Label: "A-pillar (left)", Area: "left"},
	{ID: "pillar_b_right", Label: "B-pillar (right)", Area: "right"},
	{ID: "pillar_b_left", Label: "B-pillar (left)", Area: "left"},
	{ID: "pillar_c_right", Label: "C-pillar (right)", Area: "right"},
	{ID: "pillar_c_left", Label: "C-pillar (left)", Area: "left"},
	{ID: "mirror_right", Label: "Mirror (right)", Area: "right"},
	{ID: "mirror_left", Label: "Mirror (left)", Area: "left"},
	{ID: "windshield", Label: "Windshield", Area: "front"},
	{ID: "rear_glass", Label: "Rear glass", Area: "back"},
	{ID: "side_glass_right", Label: "Side glass (right)", Area: "right"},
	{ID: "side_glass_left", Label: "Side glass (left)", Area: "left"},
	{ID: "tire_front_right", Label: "Tire front (right)", Area: "front"},
	{ID: "tire_front_left", Label: "Tire front (left)", Area: "front"},
	{ID: "tire_rear_right", Label: "Tire rear (right)", Area: "back"},
	{ID: "tire_rear_left", Label: "Tire rear (left)", Area: "back"},
	{ID: "engine", Label: "Engine", Area: "front"},
}

var DefectTypes = []DefectType{
	{ID: "scratch_light", Label: "Surface scratch", Color: "#FFA500"},
	{ID: "scratch_deep", Label: "Deep scratch", Color: "#FF4500"},
	{ID: "dent_light", Label: "Light dent", Color: "#FFD700"},
	{ID: "dent_severe", Label: "Severe dent", Color: "#DC143C"},
	{ID: "crack", Label: "Break", Color: "#8B0000"},
	{ID: "fracture", Label: "Crack", Color: "#B22222"},
	{ID: "paint_non_original", Label: "Non-original paint", Color: "#9370DB"},
	{ID: "color_mismatch", Label: "Color mismatch", Color: "#BA55D3"},
	{ID: "rust", Label: "Rust", Color: "#A0522D"},
	{ID: "misalignment", Label: "Misalignment", Color: "#696969"},
	{ID: "multiple_damages", Label: "Multiple damages", Color: "#FF6347"},

	{ID: "tire_worn", Label: "Worn tire", Color: "#D32F2F"},
	{ID: "tire_flat", Label: "Flat tire", Color: "#F44336"},
	{ID: "tire_cracked", Label: "Cracked tire", Color: "#E53935"},
	{ID: "tire_bulge", Label: "Tire bulge", Color: "#D84315"},
	{ID: "tire_uneven_wear", Label: "Uneven tire wear", Color: "#E64A19"},
	{ID: "tire_bald", Label: "Bald tire", Color: "#BF360C"},
	{ID: "tire_sidewall_damage", Label: "Sidewall damage", Color: "#D84315"},
	{ID: "tire_age_deterioration", Label: "Aged tire", Color: "#795548"},
	{ID: "tire_pressure_issue", Label: "Wrong tire pressure", Color: "#FF9800"},
	{ID: "tire_noise", Label: "Tire noise", Color: "#FF6F00"},
	{ID: "tire_vibration", Label: "Tire vibration", Color: "#F57C00"},
	{ID: "rim_damaged", Label: "Damaged rim", Color: "#424242"},
	{ID: "rim_bent", Label: "Bent rim", Color: "#616161"},
	{ID: "rim_scratched", Label: "Scratched rim", Color: "#757575"},
	{ID: "rim_corroded", Label: "Corroded rim", Color: "#8D6E63"},

	{ID: "engine_overheating", Label: "Engine overheating", Color: "#D32F2F"},
	{ID: "engine_oil_leak", Label: "Oil leak", Color: "#1976D2"},
	{ID: "engine_coolant_leak", Label: "Coolant leak", Color: "#0288D1"},
	{ID: "engine_noise_knocking", Label: "Knocking noise", Color: "#F44336"},
	{ID: "engine_noise_rattling", Label: "Rattling noise", Color: "#E53935"},
	{ID: "engine_smoke_white", Label: "White smoke", Color: "#BDBDBD"},
	{ID: "engine_smoke_blue", Label: "Blue smoke", Color: "#2196F3"},
	{ID: "engine_smoke_black", Label: "Black smoke", Color: "#212121"},
	{ID: "engine_misfire", Label: "Misfire", Color: "#FF9800"},
	{ID: "engine_stalling", Label: "Stalling", Color: "#D32F2F"},
	{ID: "engine_rough_idle", Label: "Rough idle", Color: "#F57C00"},
	{ID: "engine_low_power", Label: "Low power", Color: "#FF6F00"},
	{ID: "engine_check_light", Label: "Check-engine light on", Color: "#FFA000"},
	{ID: "engine_timing_issue", Label: "Timing issue", Color: "#E65100"},
	{ID: "engine_belt_damaged", Label: "Damaged belt", Color: "#424242"},
	{ID: "engine_spark_plug_issue", Label: "Faulty spark plugs", Color: "#FF5722"},
	{ID: "engine_fuel_system", Label: "Fuel system issue", Color: "#4CAF50"},
	{ID: "engine_air_filter_dirty", Label: "Dirty air filter", Color: "#9E9E9E"},
	{ID: "engine_sensor_failure", Label: "Sensor failure", Color: "#607D8B"},
	{ID: "engine_exhaust_issue", Label: "Exhaust issue", Color: "#455A64"},
	{ID: "engine_turbo_failure", Label: "Turbo failure", Color: "#546E7A"},
	{ID: "engine_gasket_leak", Label: "Gasket leak", Color: "#1565C0"},
	{ID: "engine_compression_low", Label: "Low compression", Color: "#EF5350"},
	{ID: "engine_starting_issue", Label: "Hard starting", Color: "#D84315"},
	{ID: "engine_mount_damaged", Label: "Damaged engine mounts", Color: "#6D4C41"},
}

var Severities = []Severity{
	{ID: "light", Label: "Light", Color: "#52c41a"},
	{ID: "medium", Label: "Medium", Color: "#fa8c16"},
	{ID: "severe", Label: "Severe", Color: "#ff4d4f"},
}

var Areas = []Area{
	{ID: "front", Label: "Front", ViewBox: "0 0 300 200"},
	{ID: "back", Label: "Back", ViewBox: "0 0 300 200"},
	{ID: "left", Label: "Left", ViewBox: "0 0 400 150"},
	{ID: "right", Label: "Right", ViewBox: "0 0 400 150"},
	{ID: "roof", Label: "Roof", ViewBox: "0 0 300 400"},
}

// fallbackColor marks defects whose severity or type is outside the catalog.
const fallbackColor = "#ef4444"

func LookupPart(id string) (Part, bool) {
	for _, p := range Parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

func LookupDefectType(id string) (DefectType, bool) {
	for _, d := range DefectTypes {
		if d.ID == id {
			return d, true
		}
	}
	return DefectType{}, false
}

func LookupSeverity(id string) (Severity, bool) {
	for _, s := range Severities {
		if s.ID == id {
			return s, true
		}
	}
	return Severity{}, false
}

func LookupArea(id string) (Area, bool) {
	for _, a := range Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

func IsSeverity(id string) bool {
	_, ok := LookupSeverity(id)
	return ok
}

func IsArea(id string) bool {
	_, ok := LookupArea(id)
	return ok
}

// PartLabel returns the display label for a part id, or the id itself for
// free-text parts.
func PartLabel(id string) string {
	if p, ok := LookupPart(id); ok {
		return p.Label
	}
	return id
}

func DefectLabel(id string) string {
	if d, ok := LookupDefectType(id); ok {
		return d.Label
	}
	return id
}

func SeverityLabel(id string) string {
	if s, ok := LookupSeverity(id); ok {
		return s.Label
	}
	return id
}

func SeverityColor(id string) string {
	if s, ok := LookupSeverity(id); ok {
		return s.Color
	}
	return fallbackColor
}

func AreaLabel(id string) string {
	if a, ok := LookupArea(id); ok {
		return a.Label
	}
	return id
}
