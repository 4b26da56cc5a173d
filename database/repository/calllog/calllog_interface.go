package callLogRepo

import (
	"time"

	"medcrm/models"
)

// CallLogRepository defines methods for call-log data access.
type CallLogRepository interface {
	// GetByID retrieves a call log by its unique ID.
	GetByID(id string) (*models.CallLog, error)
	// List retrieves call logs matching the filter, newest first.
	List(filter models.CallLogFilter) ([]models.CallLog, error)
	// Create inserts a new call log.
	Create(log *models.CallLog) error
	// Update modifies an existing call log.
	Update(log *models.CallLog) error
	// Delete removes a call log by its ID.
	Delete(id string) error
	// DeleteOlderThan removes call logs started before the cutoff and returns the count.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
