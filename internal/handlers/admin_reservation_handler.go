package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/dto"
	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/httpresp"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	ucReservation "github.com/BruksfildServices01/table-reservation/internal/usecase/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

type AdminReservationHandler struct {
	list   *ucReservation.ListReservations
	cancel *ucReservation.AdminCancelReservation
	remove *ucReservation.AdminDeleteReservation
	export *ucReservation.ExportReservations
}

func NewAdminReservationHandler(
	list *ucReservation.ListReservations,
	cancel *ucReservation.AdminCancelReservation,
	remove *ucReservation.AdminDeleteReservation,
	export *ucReservation.ExportReservations,
) *AdminReservationHandler {
	return &AdminReservationHandler{
		list:   list,
		cancel: cancel,
		remove: remove,
		export: export,
	}
}

type ExportRequest struct {
	Date string `json:"date" form:"date"`
}

// List serves every reservation, narrowed by ?date when given.
func (h *AdminReservationHandler) List(c *gin.Context) {
	h.respondList(c, domain.Filter{Date: c.Query("date")})
}

func (h *AdminReservationHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if validators.IsBlank(date) {
		httperr.Respond(c, domain.ErrMissingDate)
		return
	}
	h.respondList(c, domain.Filter{Date: date})
}

func (h *AdminReservationHandler) respondList(c *gin.Context, filter domain.Filter) {
	list, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Slice(c, dto.NewReservationDTOs(list))
}

func (h *AdminReservationHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Reservation cancelled by admin")
}

func (h *AdminReservationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Reservation deleted")
}

func (h *AdminReservationHandler) Export(c *gin.Context) {
	var req ExportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request body")
			return
		}
	}
	if req.Date == "" {
		req.Date = c.Query("date")
	}

	out, err := h.export.Execute(c.Request.Context(), middleware.UserID(c), req.Date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
