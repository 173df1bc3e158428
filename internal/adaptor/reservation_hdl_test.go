package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/dto/response"
	"planetarium-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReservationService records which user each call was made for
type fakeReservationService struct {
	lastUserID uuid.UUID
}

func (f *fakeReservationService) reply() *response.ReservationResponse {
	return &response.ReservationResponse{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		OwnerEmail: "alice@example.com",
		Tickets:    []response.TicketResponse{},
	}
}

func (f *fakeReservationService) GetReservations(_ context.Context, userID uuid.UUID, req *request.PaginatedRequest, _ string) (*response.PaginatedResponse[response.ReservationResponse], error) {
	f.lastUserID = userID
	return response.NewPaginatedResponse([]response.ReservationResponse{*f.reply()}, req.Page, req.PerPage, 1), nil
}

func (f *fakeReservationService) GetReservationByID(_ context.Context, userID uuid.UUID, _ string) (*response.ReservationResponse, error) {
	f.lastUserID = userID
	return f.reply(), nil
}

func (f *fakeReservationService) CreateReservation(_ context.Context, userID uuid.UUID) (*response.ReservationResponse, error) {
	f.lastUserID = userID
	return f.reply(), nil
}

func (f *fakeReservationService) UpdateReservation(_ context.Context, userID uuid.UUID, _ string) (*response.ReservationResponse, error) {
	f.lastUserID = userID
	return f.reply(), nil
}

func (f *fakeReservationService) DeleteReservation(_ context.Context, userID uuid.UUID, _ string) error {
	f.lastUserID = userID
	return nil
}

func TestCreateReservationHandler_RequiresAuth(t *testing.T) {
	handler := adaptor.NewReservationHandler(&fakeReservationService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
	rec := httptest.NewRecorder()

	handler.CreateReservation(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReservationHandler_UsesSessionUser(t *testing.T) {
	service := &fakeReservationService{}
	handler := adaptor.NewReservationHandler(service, zap.NewNop())

	sessionUser := uuid.New()
	// A user field in the body must be ignored; the body is never decoded
	body := strings.NewReader(`{"user":"` + uuid.NewString() + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", body)
	req = req.WithContext(utils.SetUserContext(req.Context(), sessionUser, "visitor"))
	rec := httptest.NewRecorder()

	handler.CreateReservation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, sessionUser, service.lastUserID)
}

func TestGetReservationsHandler_UsesSessionUser(t *testing.T) {
	service := &fakeReservationService{}
	handler := adaptor.NewReservationHandler(service, zap.NewNop())

	sessionUser := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), sessionUser, "visitor"))
	rec := httptest.NewRecorder()

	handler.GetReservations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionUser, service.lastUserID)
}
