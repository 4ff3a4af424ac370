package measurements

import "time"

type BodyMeasurement struct {
	ID              int       `json:"id"`
	UserID          int       `json:"-"`
	MeasurementDate time.Time `json:"measurementDate"`
	WeightKg        *float64  `json:"weightKg,omitempty"`
	BodyFatPct      *float64  `json:"bodyFatPct,omitempty"`
	ChestCm         *float64  `json:"chestCm,omitempty"`
	WaistCm         *float64  `json:"waistCm,omitempty"`
	HipsCm          *float64  `json:"hipsCm,omitempty"`
	LeftArmCm       *float64  `json:"leftArmCm,omitempty"`
	RightArmCm      *float64  `json:"rightArmCm,omitempty"`
	LeftThighCm     *float64  `json:"leftThighCm,omitempty"`
	RightThighCm    *float64  `json:"rightThighCm,omitempty"`
	LeftCalfCm      *float64  `json:"leftCalfCm,omitempty"`
	RightCalfCm     *float64  `json:"rightCalfCm,omitempty"`
	NeckCm          *float64  `json:"neckCm,omitempty"`
	ShouldersCm     *float64  `json:"shouldersCm,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// fieldExtractors is the allow-list of measurement fields that can be
// charted over time. Progress requests validate against it, the field
// name never reaches the SQL layer.
var fieldExtractors = map[string]func(*BodyMeasurement) *float64{
	"weight":      func(m *BodyMeasurement) *float64 { return m.WeightKg },
	"body_fat":    func(m *BodyMeasurement) *float64 { return m.BodyFatPct },
	"chest":       func(m *BodyMeasurement) *float64 { return m.ChestCm },
	"waist":       func(m *BodyMeasurement) *float64 { return m.WaistCm },
	"hips":        func(m *BodyMeasurement) *float64 { return m.HipsCm },
	"left_arm":    func(m *BodyMeasurement) *float64 { return m.LeftArmCm },
	"right_arm":   func(m *BodyMeasurement) *float64 { return m.RightArmCm },
	"left_thigh":  func(m *BodyMeasurement) *float64 { return m.LeftThighCm },
	"right_thigh": func(m *BodyMeasurement) *float64 { return m.RightThighCm },
	"left_calf":   func(m *BodyMeasurement) *float64 { return m.LeftCalfCm },
	"right_calf":  func(m *BodyMeasurement) *float64 { return m.RightCalfCm },
	"neck":        func(m *BodyMeasurement) *float64 { return m.NeckCm },
	"shoulders":   func(m *BodyMeasurement) *float64 { return m.ShouldersCm },
}

// comparableFields keeps the comparison output in a stable order.
var comparableFields = []string{
	"weight", "body_fat", "chest", "waist", "hips",
	"left_arm", "right_arm", "left_thigh", "right_thigh",
	"left_calf", "right_calf", "neck", "shoulders",
}

func ValidField(field string) bool {
	_, ok := fieldExtractors[field]
	return ok
}

func FieldValue(m *BodyMeasurement, field string) (*float64, bool) {
	extract, ok := fieldExtractors[field]
	if !ok {
		return nil, false
	}
	return extract(m), true
}
