package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/config"
	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/repositories"
	"github.com/homeseek/backend/internal/uploads"
	"github.com/homeseek/backend/internal/utils"
)

type SaleService interface {
	CreateListing(ctx context.Context, req dtos.CreateSalePropertyRequest) (*models.SaleProperty, error)
	ListAvailable(ctx context.Context) ([]*models.SaleProperty, error)
	GetAvailable(ctx context.Context, id uuid.UUID) (*models.SaleProperty, error)

	Book(ctx context.Context, user models.UserData, req dtos.BookSaleRequest) (*models.SaleTransaction, error)
	GetTransaction(ctx context.Context, user models.UserData, id uuid.UUID) (*models.SaleTransactionDetail, error)
	ListMyTransactions(ctx context.Context, user models.UserData) ([]*models.SaleTransactionDetail, error)
	Pay(ctx context.Context, user models.UserData, id uuid.UUID) (*models.SaleTransaction, error)
}

type saleService struct {
	cfg          *config.Config
	properties   repositories.SalePropertyRepository
	transactions repositories.SaleTransactionRepository
	pictures     *uploads.Saver
	calc         PaymentCalculator
	now          func() time.Time
}

func NewSaleService(
	cfg *config.Config,
	properties repositories.SalePropertyRepository,
	transactions repositories.SaleTransactionRepository,
	pictures *uploads.Saver,
	calc PaymentCalculator,
) SaleService {
	return &saleService{
		cfg:          cfg,
		properties:   properties,
		transactions: transactions,
		pictures:     pictures,
		calc:         calc,
		now:          time.Now,
	}
}

func (s *saleService) CreateListing(ctx context.Context, req dtos.CreateSalePropertyRequest) (*models.SaleProperty, error) {
	filename, err := uploads.SafeFilename(req.PictureFilename)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "Uploaded file error", err)
	}
	if err := uploads.ValidateImage(req.Picture, req.PictureFilename); err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "Invalid file extension", err)
	}

	ownerID, err := uuid.Parse(req.Owner)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "Failed converting owner ID",
			errors.New("invalid UUID format on owner_id"))
	}

	if _, err := s.pictures.Save(uploads.KindSale, filename, req.Picture); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed saving file", err)
	}

	property := &models.SaleProperty{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		OwnerID:       ownerID,
		LandSize:      req.LandSize,
		BuildingSize:  req.BuildingSize,
		Bedroom:       req.Bedroom,
		Bathroom:      req.Bathroom,
		PropertyPrice: req.PropertyPrice,
		PictureURL:    fmt.Sprintf("%s/sale-pictures/%s", s.cfg.HostURL, filename),
		Status:        models.PropertyStatusAvailable,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed inserting sale property", err)
	}
	return property, nil
}

func (s *saleService) ListAvailable(ctx context.Context) ([]*models.SaleProperty, error) {
	properties, err := s.properties.ListAvailable(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed fetching sale property", err)
	}
	return properties, nil
}

func (s *saleService) GetAvailable(ctx context.Context, id uuid.UUID) (*models.SaleProperty, error) {
	property, err := s.properties.GetAvailableByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed to fetch property", err)
	}
	if property == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Property not found",
			fmt.Errorf("no property matching id: %s", id))
	}
	return property, nil
}

// Book consumes the listing permanently: once a non-Cancelled sale
// transaction exists the property never reappears in availability.
// The mortgage is derived from the server-side listing price.
func (s *saleService) Book(ctx context.Context, user models.UserData, req dtos.BookSaleRequest) (*models.SaleTransaction, error) {
	property, err := s.GetAvailable(ctx, req.SalePropertyID)
	if err != nil {
		return nil, err
	}

	if req.DownPayment >= property.PropertyPrice {
		return nil, utils.NewAppError(http.StatusBadRequest, "Invalid down payment",
			errors.New("down_payment must be below the property price"))
	}

	transaction := &models.SaleTransaction{
		ID:                  uuid.New(),
		SalePropertyID:      property.ID,
		UserID:              user.ID,
		DownPayment:         req.DownPayment,
		InstallmentDuration: req.InstallmentDuration,
		MonthlyMortgage: s.calc.Amount(property.PropertyPrice, PaymentTerms{
			DownPayment:       req.DownPayment,
			InstallmentMonths: req.InstallmentDuration,
		}),
		SaleDate: models.DateOf(s.now()),
		Status:   models.TransactionStatusUnpaid,
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed submitting form", err)
	}
	return transaction, nil
}

func (s *saleService) GetTransaction(ctx context.Context, user models.UserData, id uuid.UUID) (*models.SaleTransactionDetail, error) {
	detail, err := s.transactions.GetDetailByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to retrieve transaction", err)
	}
	if detail == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Transaction not found",
			fmt.Errorf("no transaction matching id: %s", id))
	}
	if detail.UserID != user.ID {
		return nil, utils.NewAppError(http.StatusForbidden, "Content restricted",
			errors.New("user does not match transaction owner"))
	}
	return detail, nil
}

func (s *saleService) ListMyTransactions(ctx context.Context, user models.UserData) ([]*models.SaleTransactionDetail, error) {
	details, err := s.transactions.ListDetailsByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to retrieve transaction", err)
	}
	return details, nil
}

func (s *saleService) Pay(ctx context.Context, user models.UserData, id uuid.UUID) (*models.SaleTransaction, error) {
	transaction, err := s.transactions.MarkPaid(ctx, id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, utils.NewAppError(http.StatusNotFound, "Failed processing payment",
				errors.New("invalid transaction id"))
		case errors.Is(err, utils.ErrForbidden):
			return nil, utils.NewAppError(http.StatusForbidden, "Failed processing payment",
				errors.New("user not authorized"))
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed processing payment", err)
	}
	return transaction, nil
}
