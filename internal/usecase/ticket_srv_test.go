package usecase_test

import (
	"context"
	"testing"
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingScene seeds a user, a dome, a show, a session in that dome and a
// reservation owned by the user.
type bookingScene struct {
	user        *entity.User
	dome        *entity.PlanetariumDome
	session     *entity.ShowSession
	reservation *entity.Reservation
}

func seedBookingScene(store *memStore) *bookingScene {
	now := time.Now()
	user := seedUser(store, "alice@example.com")

	dome := &entity.PlanetariumDome{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Main Dome",
		Rows:       5,
		SeatsInRow: 8,
	}
	store.domes[dome.ID] = dome

	show := &entity.AstronomyShow{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:       "Journey to Mars",
		Description: "A guided tour of the red planet",
	}
	store.shows[show.ID] = show

	session := &entity.ShowSession{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		AstronomyShowID:   show.ID,
		PlanetariumDomeID: dome.ID,
		ShowTime:          now.Add(48 * time.Hour),
	}
	store.showSessions[session.ID] = session

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
	}
	store.reservations[reservation.ID] = reservation

	return &bookingScene{user: user, dome: dome, session: session, reservation: reservation}
}

func (s *bookingScene) ticketRequest(row, seat int) *request.TicketRequest {
	return &request.TicketRequest{
		Row:         row,
		Seat:        seat,
		ShowSession: s.session.ID.String(),
		Reservation: s.reservation.ID.String(),
	}
}

func TestCreateTicket_Succeeds(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)

	created, err := service.CreateTicket(context.Background(), scene.user.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, created.Row)
	assert.Equal(t, 3, created.Seat)
	assert.Equal(t, scene.session.ID.String(), created.ShowSession)
	assert.Equal(t, scene.reservation.ID.String(), created.Reservation)
}

func TestCreateTicket_RowBeyondDomeRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)

	_, err := service.CreateTicket(context.Background(), scene.user.ID, scene.ticketRequest(scene.dome.Rows+1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid row")
}

func TestCreateTicket_SeatBeyondRowRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)

	_, err := service.CreateTicket(context.Background(), scene.user.ID, scene.ticketRequest(1, scene.dome.SeatsInRow+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seat")
}

func TestCreateTicket_TakenSeatRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	_, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)

	_, err = service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestCreateTicket_UnknownSessionRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)

	req := scene.ticketRequest(1, 1)
	req.ShowSession = uuid.NewString()

	_, err := service.CreateTicket(context.Background(), scene.user.ID, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid show_session")
}

func TestCreateTicket_OtherUsersReservationRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	bob := seedUser(store, "bob@example.com")

	_, err := service.CreateTicket(context.Background(), bob.ID, scene.ticketRequest(1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reservation")
}

func TestUpdateTicket_KeepingSameSeatIsNoConflict(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	created, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)

	updated, err := service.UpdateTicket(ctx, scene.user.ID, created.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateTicket_MovingOntoTakenSeatRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	_, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)
	second, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 4))
	require.NoError(t, err)

	_, err = service.UpdateTicket(ctx, scene.user.ID, second.ID, scene.ticketRequest(2, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestGetTicketByID_ReturnsNestedDetail(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	created, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(2, 3))
	require.NoError(t, err)

	detail, err := service.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Journey to Mars", detail.ShowSession.AstronomyShowTitle)
	assert.Equal(t, "Main Dome", detail.ShowSession.PlanetariumDomeName)
	assert.Equal(t, "alice@example.com", detail.Reservation.OwnerEmail)
}

func TestGetTickets_SearchByOwnerEmail(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewTicketService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	_, err := service.CreateTicket(ctx, scene.user.ID, scene.ticketRequest(1, 1))
	require.NoError(t, err)

	page, err := service.GetTickets(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10}, "alice")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "alice@example.com", page.Data[0].OwnerEmail)

	empty, err := service.GetTickets(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10}, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty.Data)
}
