package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/santluz/Oficina-sub000/internal/adapter/http/dto/response"
	"github.com/santluz/Oficina-sub000/internal/usecase"
	"github.com/santluz/Oficina-sub000/pkg"
)

// DashboardHandler serves the derived reporting view.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
