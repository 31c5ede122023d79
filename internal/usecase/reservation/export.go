package reservation

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/infra/archive"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

var exportHeader = []string{
	"id", "date", "timeSlot", "tableNumber", "guests",
	"status", "userName", "userEmail", "createdAt", "cancelledAt",
}

// ExportReservations writes one day of the ledger as CSV to the archive.
type ExportReservations struct {
	repo     domain.Repository
	archiver archive.Archiver
	audit    *audit.Dispatcher
}

// NewExportReservations accepts a nil archiver; Execute then reports the
// export as unavailable.
func NewExportReservations(
	repo domain.Repository,
	archiver archive.Archiver,
	audit *audit.Dispatcher,
) *ExportReservations {
	return &ExportReservations{repo: repo, archiver: archiver, audit: audit}
}

func (uc *ExportReservations) Execute(
	ctx context.Context,
	adminID uint,
	date string,
) (*ExportResult, error) {

	if uc.archiver == nil {
		return nil, domain.ErrExportDisabled
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return nil, domain.ErrMissingDate
	}

	list, err := uc.repo.List(ctx, domain.Filter{Date: date})
	if err != nil {
		return nil, err
	}

	body, err := renderCSV(list)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reservations/%s.csv", date)
	if err := uc.archiver.Put(ctx, key, body, "text/csv"); err != nil {
		return nil, fmt.Errorf("archive %s: %w", key, err)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "reservations_exported",
			Entity:   "reservation",
			Metadata: map[string]any{"key": key, "count": len(list)},
		})
	}

	return &ExportResult{Key: key, Count: len(list)}, nil
}

func renderCSV(list []models.Reservation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, r := range list {
		tableNumber, userName, userEmail, cancelledAt := "", "", "", ""
		if r.Table != nil {
			tableNumber = strconv.Itoa(r.Table.TableNumber)
		}
		if r.User != nil {
			userName = csvSafe(r.User.Name)
			userEmail = csvSafe(r.User.Email)
		}
		if r.CancelledAt != nil {
			cancelledAt = r.CancelledAt.UTC().Format(time.RFC3339)
		}

		if err := w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Date,
			r.TimeSlot,
			tableNumber,
			strconv.Itoa(r.Guests),
			r.Status,
			userName,
			userEmail,
			r.CreatedAt.UTC().Format(time.RFC3339),
			cancelledAt,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// csvSafe keeps user supplied text from being read as a spreadsheet formula.
func csvSafe(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
