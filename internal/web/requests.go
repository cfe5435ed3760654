package web

import (
	"strings"

	"github.com/vbonduro/carcheck/internal/domain"
)

type createInspectionRequest struct {
	ClientName      string         `json:"clientName" validate:"required,max=200"`
	ClientPhone     *string        `json:"clientPhone" validate:"omitempty,max=50"`
	ClientEmail     *string        `json:"clientEmail" validate:"omitnil,optional_email,max=254"`
	VehicleInfo     string         `json:"vehicleInfo" validate:"required,max=500"`
	VINNumber       *string        `json:"vinNumber" validate:"omitempty,max=50"`
	Color           *string        `json:"color" validate:"omitempty,max=50"`
	Mileage         *string        `json:"mileage" validate:"omitempty,max=50"`
	EngineNumber    *string        `json:"engineNumber" validate:"omitempty,max=50"`
	ClientSignature *string        `json:"clientSignature" validate:"omitempty,signature"`
	Status          *domain.Status `json:"status" validate:"omitempty,inspection_status"`
}

func (req *createInspectionRequest) normalize() {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.VehicleInfo = strings.TrimSpace(req.VehicleInfo)
}

func (req *createInspectionRequest) toDomain() *domain.Inspection {
	in := &domain.Inspection{
		ClientName:      req.ClientName,
		ClientPhone:     emptyToNil(req.ClientPhone),
		ClientEmail:     emptyToNil(req.ClientEmail),
		VehicleInfo:     req.VehicleInfo,
		VINNumber:       emptyToNil(req.VINNumber),
		Color:           emptyToNil(req.Color),
		Mileage:         emptyToNil(req.Mileage),
		EngineNumber:    emptyToNil(req.EngineNumber),
		ClientSignature: emptyToNil(req.ClientSignature),
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	return in
}

// updateInspectionRequest is a partial update: absent fields are left alone.
type updateInspectionRequest struct {
	ClientName      *string        `json:"clientName" validate:"omitnil,min=1,max=200"`
	ClientPhone     *string        `json:"clientPhone" validate:"omitempty,max=50"`
	ClientEmail     *string        `json:"clientEmail" validate:"omitnil,optional_email,max=254"`
	VehicleInfo     *string        `json:"vehicleInfo" validate:"omitnil,min=1,max=500"`
	VINNumber       *string        `json:"vinNumber" validate:"omitempty,max=50"`
	Color           *string        `json:"color" validate:"omitempty,max=50"`
	Mileage         *string        `json:"mileage" validate:"omitempty,max=50"`
	EngineNumber    *string        `json:"engineNumber" validate:"omitempty,max=50"`
	ClientSignature *string        `json:"clientSignature" validate:"omitempty,signature"`
	Status          *domain.Status `json:"status" validate:"omitnil,inspection_status"`
}

func (req *updateInspectionRequest) normalize() {
	if req.ClientName != nil {
		trimmed := strings.TrimSpace(*req.ClientName)
		req.ClientName = &trimmed
	}
	if req.VehicleInfo != nil {
		trimmed := strings.TrimSpace(*req.VehicleInfo)
		req.VehicleInfo = &trimmed
	}
}

func (req *updateInspectionRequest) toDomain() domain.InspectionUpdate {
	return domain.InspectionUpdate{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		VehicleInfo:     req.VehicleInfo,
		VINNumber:       req.VINNumber,
		Color:           req.Color,
		Mileage:         req.Mileage,
		EngineNumber:    req.EngineNumber,
		ClientSignature: req.ClientSignature,
		Status:          req.Status,
	}
}

// signatureRequest requires the field to be present. An explicit "" clears
// the stored signature; a missing field is rejected.
type signatureRequest struct {
	Signature *string `json:"signature" validate:"required,signature"`
}

type createItemRequest struct {
	PartName    string  `json:"partName" validate:"required,max=100"`
	DefectType  string  `json:"defectType" validate:"required,max=100"`
	Severity    string  `json:"severity" validate:"required,severity"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
	PositionX   *int64  `json:"positionX" validate:"omitnil,gte=0"`
	PositionY   *int64  `json:"positionY" validate:"omitnil,gte=0"`
	VehicleArea string  `json:"vehicleArea" validate:"required,vehicle_area"`
}

func (req *createItemRequest) normalize() {
	req.PartName = strings.TrimSpace(req.PartName)
	req.DefectType = strings.TrimSpace(req.DefectType)
}

func (req *createItemRequest) toDomain(inspectionID int64) *domain.Item {
	return &domain.Item{
		InspectionID: inspectionID,
		PartName:     req.PartName,
		DefectType:   req.DefectType,
		Severity:     domain.Severity(req.Severity),
		Notes:        emptyToNil(req.Notes),
		PositionX:    req.PositionX,
		PositionY:    req.PositionY,
		VehicleArea:  req.VehicleArea,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
