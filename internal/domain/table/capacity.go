package table

import (
	"github.com/BruksfildServices01/table-reservation/internal/models"
	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

func ValidateCapacity(capacity int) error {
	if !validators.InRange(capacity, models.MinTableCapacity, models.MaxTableCapacity) {
		return ErrInvalidCapacity
	}
	return nil
}
