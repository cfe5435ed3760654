package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is wrapped by stores and services when a referenced
	// inspection, item or photo does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAnalyzerUnavailable is returned when defect suggestions are
	// requested but no vision backend is configured.
	ErrAnalyzerUnavailable = errors.New("damage analyzer not configured")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Severity string

const (
	SeverityLight  Severity = "light"
	SeverityMedium Severity = "medium"
	SeveritySevere Severity = "severe"
)

type Inspection struct {
	ID              int64     `db:"id" json:"id"`
	ClientName      string    `db:"client_name" json:"clientName"`
	ClientPhone     *string   `db:"client_phone" json:"clientPhone"`
	ClientEmail     *string   `db:"client_email" json:"clientEmail"`
	VehicleInfo     string    `db:"vehicle_info" json:"vehicleInfo"`
	VINNumber       *string   `db:"vin_number" json:"vinNumber"`
	Color           *string   `db:"color" json:"color"`
	Mileage         *string   `db:"mileage" json:"mileage"`
	EngineNumber    *string   `db:"engine_number" json:"engineNumber"`
	ClientSignature *string   `db:"client_signature" json:"clientSignature"`
	Status          Status    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// InspectionUpdate carries a partial update. Nil fields are left unchanged;
// a non-nil empty optional field clears the column.
type InspectionUpdate struct {
	ClientName      *string
	ClientPhone     *string
	ClientEmail     *string
	VehicleInfo     *string
	VINNumber       *string
	Color           *string
	Mileage         *string
	EngineNumber    *string
	ClientSignature *string
	Status          *Status
}

// Empty reports whether the update would change nothing.
func (u InspectionUpdate) Empty() bool {
	return u.ClientName == nil && u.ClientPhone == nil && u.ClientEmail == nil &&
		u.VehicleInfo == nil && u.VINNumber == nil && u.Color == nil &&
		u.Mileage == nil && u.EngineNumber == nil && u.ClientSignature == nil &&
		u.Status == nil
}

type Item struct {
	ID           int64     `db:"id" json:"id"`
	InspectionID int64     `db:"inspection_id" json:"inspectionId"`
	PartName     string    `db:"part_name" json:"partName"`
	DefectType   string    `db:"defect_type" json:"defectType"`
	Severity     Severity  `db:"severity" json:"severity"`
	Notes        *string   `db:"notes" json:"notes"`
	PositionX    *int64    `db:"position_x" json:"positionX"`
	PositionY    *int64    `db:"position_y" json:"positionY"`
	VehicleArea  string    `db:"vehicle_area" json:"vehicleArea"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Photo struct {
	ID         int64     `db:"id" json:"id"`
	ItemID     int64     `db:"item_id" json:"itemId"`
	ImageURL   string    `db:"image_url" json:"imageUrl"`
	StorageKey string    `db:"storage_key" json:"-"`
	MimeType   string    `db:"mime_type" json:"mimeType"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// ItemWithPhotos is an item as returned inside an inspection detail.
type ItemWithPhotos struct {
	*Item
	Photos []*Photo `json:"photos"`
}

// InspectionDetail is an inspection with its items and their photos.
type InspectionDetail struct {
	*Inspection
	Items []*ItemWithPhotos `json:"items"`
}
