package viewmodel

import (
	"errors"
	"fmt"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
)

// Data-integrity conditions raised for units that cannot be labelled.
var (
	ErrUnitStatusMissing = errors.New("unit status tag missing")
	ErrUnitStatusUnknown = errors.New("unit status tag unknown")
)

var unitStatusLabels = map[models.UnitStatusTag]string{
	models.UnitStatusCompleted: "완료",
	models.UnitStatusPending:   "진행중",
	models.UnitStatusMissing:   "미배포",
}

// ClassifyUnit maps the unit's status tag to its badge. The assessment flags are
// never consulted; an explicit StatusLabel on the record overrides the default text.
func ClassifyUnit(unit models.UnitRecord) (dto.UnitStatus, error) {
	if unit.Status == "" {
		return dto.UnitStatus{}, integrityError(unit, ErrUnitStatusMissing)
	}
	label, ok := unitStatusLabels[unit.Status]
	if !ok {
		return dto.UnitStatus{}, integrityError(unit, ErrUnitStatusUnknown)
	}
	if unit.StatusLabel != "" {
		label = unit.StatusLabel
	}
	return dto.UnitStatus{
		Status:      unit.Status,
		StatusLabel: label,
		StyleKey:    "status-" + string(unit.Status),
	}, nil
}

func integrityError(unit models.UnitRecord, cause error) error {
	message := fmt.Sprintf("unit %q: %v", unit.Name, cause)
	if unit.Status != "" {
		message = fmt.Sprintf("unit %q: %v (%q)", unit.Name, cause, unit.Status)
	}
	return appErrors.Wrap(cause, appErrors.ErrDataIntegrity.Code, appErrors.ErrDataIntegrity.Status, message).
		WithDetails(map[string]interface{}{"unit": unit.Name, "status": string(unit.Status)})
}
