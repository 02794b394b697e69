package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeseek/backend/internal/config"
	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/uploads"
	"github.com/homeseek/backend/internal/utils"
)

var (
	testPNG = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d}
	testGIF = []byte("GIF89a\x01\x00\x01\x00")
)

// ---------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------

type fakeRentPropertyRepo struct {
	available map[uuid.UUID]*models.RentProperty
	created   []*models.RentProperty
}

func newFakeRentPropertyRepo() *fakeRentPropertyRepo {
	return &fakeRentPropertyRepo{available: make(map[uuid.UUID]*models.RentProperty)}
}

func (f *fakeRentPropertyRepo) Create(_ context.Context, p *models.RentProperty) error {
	f.created = append(f.created, p)
	f.available[p.ID] = p
	return nil
}

func (f *fakeRentPropertyRepo) ListAvailable(_ context.Context) ([]*models.RentProperty, error) {
	var out []*models.RentProperty
	for _, p := range f.available {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRentPropertyRepo) GetAvailableByID(_ context.Context, id uuid.UUID) (*models.RentProperty, error) {
	return f.available[id], nil
}

type fakeRentTransactionRepo struct {
	stored  map[uuid.UUID]*models.RentTransaction
	details map[uuid.UUID]*models.RentTransactionDetail
}

func newFakeRentTransactionRepo() *fakeRentTransactionRepo {
	return &fakeRentTransactionRepo{
		stored:  make(map[uuid.UUID]*models.RentTransaction),
		details: make(map[uuid.UUID]*models.RentTransactionDetail),
	}
}

func (f *fakeRentTransactionRepo) Create(_ context.Context, t *models.RentTransaction) error {
	f.stored[t.ID] = t
	return nil
}

func (f *fakeRentTransactionRepo) GetDetailByID(_ context.Context, id uuid.UUID) (*models.RentTransactionDetail, error) {
	return f.details[id], nil
}

func (f *fakeRentTransactionRepo) ListDetailsByUserID(_ context.Context, userID uuid.UUID) ([]*models.RentTransactionDetail, error) {
	var out []*models.RentTransactionDetail
	for _, d := range f.details {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRentTransactionRepo) MarkPaid(_ context.Context, id uuid.UUID, callerID uuid.UUID) (*models.RentTransaction, error) {
	t, ok := f.stored[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if t.UserID != callerID {
		// Rolled back: stored status stays untouched.
		return nil, utils.ErrForbidden
	}
	t.Status = models.TransactionStatusPaid
	return t, nil
}

// ---------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------

func newRentFixture(t *testing.T) (RentService, *fakeRentPropertyRepo, *fakeRentTransactionRepo, string) {
	t.Helper()
	uploadDir := t.TempDir()
	cfg := &config.Config{HostURL: "http://localhost:8080", UploadDir: uploadDir}
	propRepo := newFakeRentPropertyRepo()
	txRepo := newFakeRentTransactionRepo()
	svc := NewRentService(cfg, propRepo, txRepo, uploads.NewSaver(uploadDir), NewFlatPeriodCalculator())
	return svc, propRepo, txRepo, uploadDir
}

func requireAppError(t *testing.T, err error, status int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.StatusCode)
	return appErr
}

func availableRentProperty(rate int64) *models.RentProperty {
	return &models.RentProperty{
		ID:          uuid.New(),
		Title:       "Garden House",
		MonthlyRent: rate,
		Status:      models.PropertyStatusAvailable,
	}
}

// ---------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------

func TestRentCreateListing(t *testing.T) {
	svc, propRepo, _, uploadDir := newRentFixture(t)
	ownerID := uuid.New()

	property, err := svc.CreateListing(context.Background(), dtos.CreateRentPropertyRequest{
		Owner:           ownerID.String(),
		Title:           "Garden House",
		Description:     "Two stories with a yard",
		Address:         "Jl. Kenanga 5",
		LandSize:        120,
		BuildingSize:    90,
		Bedroom:         3,
		Bathroom:        2,
		MonthlyRent:     1500,
		PictureFilename: "Garden House.png",
		Picture:         testPNG,
	})
	require.NoError(t, err)

	assert.Equal(t, ownerID, property.OwnerID)
	assert.Equal(t, models.PropertyStatusAvailable, property.Status)
	assert.Equal(t, "http://localhost:8080/rent-pictures/garden-house.png", property.PictureURL)
	require.Len(t, propRepo.created, 1)

	_, err = os.Stat(filepath.Join(uploadDir, "rents", "garden-house.png"))
	assert.NoError(t, err)
}

func TestRentCreateListingRejectsRenamedGIF(t *testing.T) {
	svc, propRepo, _, uploadDir := newRentFixture(t)

	_, err := svc.CreateListing(context.Background(), dtos.CreateRentPropertyRequest{
		Owner:           uuid.NewString(),
		Title:           "Fake Picture",
		Description:     "gif renamed to png",
		Address:         "Jl. Kenanga 5",
		MonthlyRent:     1000,
		PictureFilename: "sneaky.png",
		Picture:         testGIF,
	})
	requireAppError(t, err, http.StatusBadRequest)

	// Nothing persisted: no row, no file.
	assert.Empty(t, propRepo.created)
	entries, _ := os.ReadDir(filepath.Join(uploadDir, "rents"))
	assert.Empty(t, entries)
}

func TestRentCreateListingRejectsBadOwnerID(t *testing.T) {
	svc, propRepo, _, _ := newRentFixture(t)

	_, err := svc.CreateListing(context.Background(), dtos.CreateRentPropertyRequest{
		Owner:           "not-a-uuid",
		Title:           "Garden House",
		Description:     "desc",
		Address:         "addr",
		MonthlyRent:     1000,
		PictureFilename: "house.png",
		Picture:         testPNG,
	})
	requireAppError(t, err, http.StatusBadRequest)
	assert.Empty(t, propRepo.created)
}

func TestRentBookComputesTotalPayment(t *testing.T) {
	svc, propRepo, txRepo, _ := newRentFixture(t)
	property := availableRentProperty(1000)
	propRepo.available[property.ID] = property
	user := models.UserData{ID: uuid.New()}

	start := models.NewDate(2025, time.June, 1)

	tests := []struct {
		name     string
		days     int
		expected int64
	}{
		{"90 days pays three months", 90, 3000},
		{"45 days pays one month", 45, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transaction, err := svc.Book(context.Background(), user, dtos.BookRentRequest{
				RentPropertyID: property.ID,
				StartDate:      start,
				EndDate:        models.DateOf(start.AddDate(0, 0, tc.days)),
			})
			require.NoError(t, err)

			assert.Equal(t, tc.expected, transaction.TotalPayment)
			assert.Equal(t, models.TransactionStatusUnpaid, transaction.Status)
			assert.Equal(t, user.ID, transaction.UserID)
			assert.Contains(t, txRepo.stored, transaction.ID)
		})
	}
}

func TestRentBookUnavailableProperty(t *testing.T) {
	svc, _, txRepo, _ := newRentFixture(t)

	start := models.NewDate(2025, time.June, 1)
	_, err := svc.Book(context.Background(), models.UserData{ID: uuid.New()}, dtos.BookRentRequest{
		RentPropertyID: uuid.New(),
		StartDate:      start,
		EndDate:        models.DateOf(start.AddDate(0, 0, 30)),
	})
	requireAppError(t, err, http.StatusNotFound)
	assert.Empty(t, txRepo.stored)
}

func TestRentBookInvalidPeriod(t *testing.T) {
	svc, propRepo, _, _ := newRentFixture(t)
	property := availableRentProperty(1000)
	propRepo.available[property.ID] = property

	start := models.NewDate(2025, time.June, 30)
	_, err := svc.Book(context.Background(), models.UserData{ID: uuid.New()}, dtos.BookRentRequest{
		RentPropertyID: property.ID,
		StartDate:      start,
		EndDate:        models.NewDate(2025, time.June, 1),
	})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestRentGetTransactionOwnership(t *testing.T) {
	svc, _, txRepo, _ := newRentFixture(t)
	owner := models.UserData{ID: uuid.New()}
	stranger := models.UserData{ID: uuid.New()}

	detail := &models.RentTransactionDetail{
		ID:     uuid.New(),
		UserID: owner.ID,
		Status: models.TransactionStatusUnpaid,
	}
	txRepo.details[detail.ID] = detail

	got, err := svc.GetTransaction(context.Background(), owner, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, detail.ID, got.ID)

	_, err = svc.GetTransaction(context.Background(), stranger, detail.ID)
	requireAppError(t, err, http.StatusForbidden)

	_, err = svc.GetTransaction(context.Background(), owner, uuid.New())
	requireAppError(t, err, http.StatusNotFound)
}

func TestRentPay(t *testing.T) {
	svc, _, txRepo, _ := newRentFixture(t)
	owner := models.UserData{ID: uuid.New()}

	transaction := &models.RentTransaction{
		ID:     uuid.New(),
		UserID: owner.ID,
		Status: models.TransactionStatusUnpaid,
	}
	txRepo.stored[transaction.ID] = transaction

	paid, err := svc.Pay(context.Background(), owner, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPaid, paid.Status)
}

func TestRentPayByNonOwnerLeavesStatusUnchanged(t *testing.T) {
	svc, _, txRepo, _ := newRentFixture(t)
	owner := models.UserData{ID: uuid.New()}
	stranger := models.UserData{ID: uuid.New()}

	transaction := &models.RentTransaction{
		ID:     uuid.New(),
		UserID: owner.ID,
		Status: models.TransactionStatusUnpaid,
	}
	txRepo.stored[transaction.ID] = transaction

	_, err := svc.Pay(context.Background(), stranger, transaction.ID)
	requireAppError(t, err, http.StatusForbidden)
	assert.Equal(t, models.TransactionStatusUnpaid, txRepo.stored[transaction.ID].Status)
}

func TestRentPayUnknownTransaction(t *testing.T) {
	svc, _, _, _ := newRentFixture(t)

	_, err := svc.Pay(context.Background(), models.UserData{ID: uuid.New()}, uuid.New())
	requireAppError(t, err, http.StatusNotFound)
}

func TestRentPayErrorsDoNotLeakSentinels(t *testing.T) {
	svc, _, _, _ := newRentFixture(t)

	_, err := svc.Pay(context.Background(), models.UserData{ID: uuid.New()}, uuid.New())
	assert.False(t, errors.Is(err, pgx.ErrNoRows), "storage sentinel must be translated for callers")
}
