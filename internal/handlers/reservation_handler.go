package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/dto"
	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/httpresp"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	ucReservation "github.com/BruksfildServices01/table-reservation/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	resolver  *ucReservation.Resolver
	create    *ucReservation.CreateReservation
	cancel    *ucReservation.CancelOwnReservation
	listMine  *ucReservation.ListMyReservations
	timeSlots []string
}

func NewReservationHandler(
	resolver *ucReservation.Resolver,
	create *ucReservation.CreateReservation,
	cancel *ucReservation.CancelOwnReservation,
	listMine *ucReservation.ListMyReservations,
	timeSlots []string,
) *ReservationHandler {
	return &ReservationHandler{
		resolver:  resolver,
		create:    create,
		cancel:    cancel,
		listMine:  listMine,
		timeSlots: timeSlots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AvailabilityRequest struct {
	Date     string `form:"date"`
	TimeSlot string `form:"timeSlot"`
	Guests   int    `form:"guests"`
}

type CreateReservationRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Guests   int    `json:"guests"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) Available(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid query parameters")
		return
	}

	avail, err := h.resolver.ComputeAvailabilityCount(c.Request.Context(), domain.AvailabilityQuery{
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		PartySize: req.Guests,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, avail)
}

func (h *ReservationHandler) TablesStatus(c *gin.Context) {
	statuses, err := h.resolver.TablesWithStatus(
		c.Request.Context(),
		c.Query("date"),
		c.Query("timeSlot"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Slice(c, statuses)
}

func (h *ReservationHandler) TimeSlots(c *gin.Context) {
	slots := h.timeSlots
	if slots == nil {
		slots = []string{}
	}
	httpresp.OK(c, gin.H{"timeSlots": slots})
}

// ======================================================
// CREATE / LIST / CANCEL
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), domain.CreateReservationInput{
		UserID:   middleware.UserID(c),
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Guests:   req.Guests,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewReservationDTO(*res))
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	list, err := h.listMine.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Slice(c, dto.NewReservationDTOs(list))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Reservation cancelled")
}
