package controllers

import (
	"net/http"

	"github.com/homeseek/backend/internal/app"
	"github.com/homeseek/backend/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(r.Context()); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database unreachable", err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "OK", nil)
}
