package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/config"
	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/repositories"
	"github.com/homeseek/backend/internal/uploads"
	"github.com/homeseek/backend/internal/utils"
)

type RentService interface {
	CreateListing(ctx context.Context, req dtos.CreateRentPropertyRequest) (*models.RentProperty, error)
	ListAvailable(ctx context.Context) ([]*models.RentProperty, error)
	GetAvailable(ctx context.Context, id uuid.UUID) (*models.RentProperty, error)

	Book(ctx context.Context, user models.UserData, req dtos.BookRentRequest) (*models.RentTransaction, error)
	GetTransaction(ctx context.Context, user models.UserData, id uuid.UUID) (*models.RentTransactionDetail, error)
	ListMyTransactions(ctx context.Context, user models.UserData) ([]*models.RentTransactionDetail, error)
	Pay(ctx context.Context, user models.UserData, id uuid.UUID) (*models.RentTransaction, error)
}

type rentService struct {
	cfg          *config.Config
	properties   repositories.RentPropertyRepository
	transactions repositories.RentTransactionRepository
	pictures     *uploads.Saver
	calc         PaymentCalculator
}

func NewRentService(
	cfg *config.Config,
	properties repositories.RentPropertyRepository,
	transactions repositories.RentTransactionRepository,
	pictures *uploads.Saver,
	calc PaymentCalculator,
) RentService {
	return &rentService{
		cfg:          cfg,
		properties:   properties,
		transactions: transactions,
		pictures:     pictures,
		calc:         calc,
	}
}

func (s *rentService) CreateListing(ctx context.Context, req dtos.CreateRentPropertyRequest) (*models.RentProperty, error) {
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

	if _, err := s.pictures.Save(uploads.KindRent, filename, req.Picture); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed saving file", err)
	}

	property := &models.RentProperty{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		OwnerID:      ownerID,
		LandSize:     req.LandSize,
		BuildingSize: req.BuildingSize,
		Bedroom:      req.Bedroom,
		Bathroom:     req.Bathroom,
		MonthlyRent:  req.MonthlyRent,
		PictureURL:   fmt.Sprintf("%s/rent-pictures/%s", s.cfg.HostURL, filename),
		Status:       models.PropertyStatusAvailable,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed inserting new rent property", err)
	}
	return property, nil
}

func (s *rentService) ListAvailable(ctx context.Context) ([]*models.RentProperty, error) {
	properties, err := s.properties.ListAvailable(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed retrieving rental properties", err)
	}
	return properties, nil
}

func (s *rentService) GetAvailable(ctx context.Context, id uuid.UUID) (*models.RentProperty, error) {
	property, err := s.properties.GetAvailableByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to retrieve property", err)
	}
	if property == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Property not found",
			fmt.Errorf("no property matching id: %s", id))
	}
	return property, nil
}

// Book re-checks availability, derives the total payment and inserts
// the transaction as Unpaid. The availability check and the insert are
// not serialized against concurrent bookings.
func (s *rentService) Book(ctx context.Context, user models.UserData, req dtos.BookRentRequest) (*models.RentTransaction, error) {
	if !req.EndDate.After(req.StartDate.Time) {
		return nil, utils.NewAppError(http.StatusBadRequest, "Invalid rental period",
			errors.New("end_date must be after start_date"))
	}

	property, err := s.GetAvailable(ctx, req.RentPropertyID)
	if err != nil {
		return nil, err
	}

	transaction := &models.RentTransaction{
		ID:             uuid.New(),
		RentPropertyID: property.ID,
		UserID:         user.ID,
		TotalPayment: s.calc.Amount(property.MonthlyRent, PaymentTerms{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		}),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.TransactionStatusUnpaid,
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed submitting form", err)
	}
	return transaction, nil
}

func (s *rentService) GetTransaction(ctx context.Context, user models.UserData, id uuid.UUID) (*models.RentTransactionDetail, error) {
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

func (s *rentService) ListMyTransactions(ctx context.Context, user models.UserData) ([]*models.RentTransactionDetail, error) {
	details, err := s.transactions.ListDetailsByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to retrieve transaction", err)
	}
	return details, nil
}

func (s *rentService) Pay(ctx context.Context, user models.UserData, id uuid.UUID) (*models.RentTransaction, error) {
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
