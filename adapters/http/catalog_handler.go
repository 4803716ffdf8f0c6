package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUC "github.com/sourabh020820033/learning-path/internal/application/usecase/catalog"
)

type CatalogHandler struct {
	useCase *catalogUC.CatalogUseCase
}

func NewCatalogHandler(uc *catalogUC.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{useCase: uc}
}

func (h *CatalogHandler) ListRoles(c *gin.Context) {
	roles, err := h.useCase.ListRoles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToRoleSummaryDTOs(roles))
}

func (h *CatalogHandler) GetRole(c *gin.Context) {
	role, err := h.useCase.GetRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToRoleDTO(role))
}

func (h *CatalogHandler) GetResources(c *gin.Context) {
	resources, err := h.useCase.GetResources(c.Request.Context(), c.Param("skill"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resources)
}
