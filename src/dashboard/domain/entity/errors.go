package entity

import "errors"

var (
	ErrProductRequired = errors.New("product is required")
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrInvalidStatus   = errors.New("status must be APPROVED, PENDING or DECLINED")
	ErrDateRequired    = errors.New("date is required")

	// HITO B - Carga masiva
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidApprovalRate = errors.New("approval_rate must be between 0 and 100")

	// HITO C - Reporte del dashboard
	ErrInvalidTimeOfDay = errors.New("time_of_day must be MORNING, AFTERNOON or EVENING")

	// HITO D - Notificaciones push
	ErrNotificationMessageRequired = errors.New("message is required")
)
