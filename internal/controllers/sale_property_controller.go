package controllers

import (
	"io"
	"net/http"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/utils"
)

type SalePropertyController struct {
	saleService services.SaleService
}

func NewSalePropertyController(s services.SaleService) *SalePropertyController {
	return &SalePropertyController{saleService: s}
}

// POST /api/sale-property (multipart: picture + fields)
func (c *SalePropertyController) CreateSalePropertyHandler(w http.ResponseWriter, r *http.Request) {
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
	propertyPrice, priceErr := formInt64(r, "property_price")
	for _, parseErr := range []error{ltErr, lbErr, bedErr, bathErr, priceErr} {
		if parseErr != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid form data", parseErr)
			return
		}
	}

	req := dtos.CreateSalePropertyRequest{
		Owner:           r.FormValue("owner"),
		Title:           r.FormValue("title"),
		Description:     r.FormValue("description"),
		Address:         r.FormValue("address"),
		LandSize:        landSize,
		BuildingSize:    buildingSize,
		Bedroom:         bedroom,
		Bathroom:        bathroom,
		PropertyPrice:   propertyPrice,
		PictureFilename: header.Filename,
		Picture:         picture,
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	property, err := c.saleService.CreateListing(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully inserted sale property", property)
}

// GET /api/sale-property
func (c *SalePropertyController) ListSalePropertiesHandler(w http.ResponseWriter, r *http.Request) {
	properties, err := c.saleService.ListAvailable(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully fetch sale property", properties)
}

// GET /api/sale-property/{sale_property_id}
func (c *SalePropertyController) GetSalePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "sale_property_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid property id", err)
		return
	}

	property, err := c.saleService.GetAvailable(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved property", property)
}
