package controllers

import (
	"net/http"

	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/utils"
)

type OwnerController struct {
	ownerService services.OwnerService
}

func NewOwnerController(s services.OwnerService) *OwnerController {
	return &OwnerController{ownerService: s}
}

// GET /api/owner
func (c *OwnerController) ListOwnersHandler(w http.ResponseWriter, r *http.Request) {
	owners, err := c.ownerService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully fetched owner list", owners)
}

// GET /api/owner/{owner_id}
func (c *OwnerController) GetOwnerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "owner_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid owner id", err)
		return
	}

	owner, err := c.ownerService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully fetched owner data", owner)
}
