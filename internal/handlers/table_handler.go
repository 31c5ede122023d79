package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/httpresp"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	ucTable "github.com/BruksfildServices01/table-reservation/internal/usecase/table"
)

type TableHandler struct {
	create *ucTable.CreateTable
	remove *ucTable.DeleteTable
	list   *ucTable.ListTables
}

func NewTableHandler(
	create *ucTable.CreateTable,
	remove *ucTable.DeleteTable,
	list *ucTable.ListTables,
) *TableHandler {
	return &TableHandler{create: create, remove: remove, list: list}
}

type CreateTableRequest struct {
	Capacity int `json:"capacity"`
}

func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Slice(c, tables)
}

func (h *TableHandler) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	tbl, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.Capacity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, tbl)
}

func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Table deleted")
}
