package controllers

import (
	"io"
	"net/http"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/utils"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type RentPropertyController struct {
	rentService services.RentService
}

func NewRentPropertyController(s services.RentService) *RentPropertyController {
	return &RentPropertyController{rentService: s}
}

// POST /api/rent-property (multipart: picture + fields)
func (c *RentPropertyController) CreateRentPropertyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Uploaded file error", err)
		return
	}
	defer file.Close()

	picture, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed reading uploaded file", err)
		return
	}

	landSize, ltErr := formInt32(r, "lt")
	buildingSize, lbErr := formInt32(r, "lb")
	bedroom, bedErr := formInt16(r, "bedroom")
	bathroom, bathErr := formInt16(r, "bathroom")
	monthlyRent, rentErr := formInt64(r, "monthly_rent")
	for _, parseErr := range []error{ltErr, lbErr, bedErr, bathErr, rentErr} {
		if parseErr != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid form data", parseErr)
			return
		}
	}

	req := dtos.CreateRentPropertyRequest{
		Owner:           r.FormValue("owner"),
		Title:           r.FormValue("title"),
		Description:     r.FormValue("description"),
		Address:         r.FormValue("address"),
		LandSize:        landSize,
		BuildingSize:    buildingSize,
		Bedroom:         bedroom,
		Bathroom:        bathroom,
		MonthlyRent:     monthlyRent,
		PictureFilename: header.Filename,
		Picture:         picture,
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	property, err := c.rentService.CreateListing(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully insert new property", property)
}

// GET /api/rent-property
func (c *RentPropertyController) ListRentPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	properties, err := c.rentService.ListAvailable(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved rental properties", properties)
}

// GET /api/rent-property/{rent_property_id}
func (c *RentPropertyController) GetRentPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "rent_property_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid property id", err)
		return
	}

	property, err := c.rentService.GetAvailable(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved property", property)
}
