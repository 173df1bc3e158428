package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore backs the fake repositories with plain maps
type memStore struct {
	users        map[uuid.UUID]*entity.User
	sessions     map[string]*entity.Session
	themes       map[uuid.UUID]*entity.ShowTheme
	shows        map[uuid.UUID]*entity.AstronomyShow
	links        []*entity.AstronomyShowTheme
	domes        map[uuid.UUID]*entity.PlanetariumDome
	showSessions map[uuid.UUID]*entity.ShowSession
	reservations map[uuid.UUID]*entity.Reservation
	tickets      map[uuid.UUID]*entity.Ticket
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]*entity.User),
		sessions:     make(map[string]*entity.Session),
		themes:       make(map[uuid.UUID]*entity.ShowTheme),
		shows:        make(map[uuid.UUID]*entity.AstronomyShow),
		domes:        make(map[uuid.UUID]*entity.PlanetariumDome),
		showSessions: make(map[uuid.UUID]*entity.ShowSession),
		reservations: make(map[uuid.UUID]*entity.Reservation),
		tickets:      make(map[uuid.UUID]*entity.Ticket),
	}
}

// newTestRepo wires every fake repository around one shared store
func newTestRepo() (*repository.Repository, *memStore) {
	store := newMemStore()
	return &repository.Repository{
		User:               &fakeUserRepo{store},
		Session:            &fakeSessionRepo{store},
		ShowTheme:          &fakeShowThemeRepo{store},
		AstronomyShow:      &fakeAstronomyShowRepo{store},
		AstronomyShowTheme: &fakeShowThemeLinkRepo{store},
		PlanetariumDome:    &fakePlanetariumDomeRepo{store},
		ShowSession:        &fakeShowSessionRepo{store},
		Reservation:        &fakeReservationRepo{store},
		Ticket:             &fakeTicketRepo{store},
	}, store
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ---------------- user ----------------

type fakeUserRepo struct{ store *memStore }

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.store.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.store.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

// ---------------- session ----------------

type fakeSessionRepo struct{ store *memStore }

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.store.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.store.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if _, ok := f.store.sessions[token]; !ok {
		return fmt.Errorf("session not found")
	}
	delete(f.store.sessions, token)
	return nil
}

// ---------------- show theme ----------------

type fakeShowThemeRepo struct{ store *memStore }

func (f *fakeShowThemeRepo) Create(_ context.Context, theme *entity.ShowTheme) error {
	f.store.themes[theme.ID] = theme
	return nil
}

func (f *fakeShowThemeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ShowTheme, error) {
	return f.store.themes[id], nil
}

func (f *fakeShowThemeRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.ShowTheme, error) {
	var themes []*entity.ShowTheme
	for _, id := range ids {
		if theme, ok := f.store.themes[id]; ok {
			themes = append(themes, theme)
		}
	}
	return themes, nil
}

func (f *fakeShowThemeRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.ShowTheme, error) {
	var themes []*entity.ShowTheme
	for _, theme := range f.store.themes {
		themes = append(themes, theme)
	}
	return paginate(themes, limit, offset), nil
}

func (f *fakeShowThemeRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.store.themes)), nil
}

func (f *fakeShowThemeRepo) Update(_ context.Context, theme *entity.ShowTheme) error {
	if _, ok := f.store.themes[theme.ID]; !ok {
		return fmt.Errorf("show theme not found")
	}
	f.store.themes[theme.ID] = theme
	return nil
}

func (f *fakeShowThemeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.themes[id]; !ok {
		return fmt.Errorf("show theme not found")
	}
	delete(f.store.themes, id)
	return nil
}

func (f *fakeShowThemeRepo) FindByShowIDs(_ context.Context, showIDs []uuid.UUID) (map[uuid.UUID][]*entity.ShowTheme, error) {
	result := make(map[uuid.UUID][]*entity.ShowTheme)
	for _, showID := range showIDs {
		for _, link := range f.store.links {
			if link.AstronomyShowID != showID {
				continue
			}
			if theme, ok := f.store.themes[link.ShowThemeID]; ok {
				result[showID] = append(result[showID], theme)
			}
		}
	}
	return result, nil
}

// ---------------- astronomy show ----------------

type fakeAstronomyShowRepo struct{ store *memStore }

func (f *fakeAstronomyShowRepo) Create(_ context.Context, show *entity.AstronomyShow) error {
	f.store.shows[show.ID] = show
	return nil
}

func (f *fakeAstronomyShowRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AstronomyShow, error) {
	return f.store.shows[id], nil
}

func (f *fakeAstronomyShowRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.AstronomyShow, error) {
	var shows []*entity.AstronomyShow
	for _, show := range f.store.shows {
		if matches(search, show.Title, show.Description) {
			shows = append(shows, show)
		}
	}
	return paginate(shows, limit, offset), nil
}

func (f *fakeAstronomyShowRepo) CountAll(_ context.Context, search string) (int64, error) {
	var total int64
	for _, show := range f.store.shows {
		if matches(search, show.Title, show.Description) {
			total++
		}
	}
	return total, nil
}

func (f *fakeAstronomyShowRepo) Update(_ context.Context, show *entity.AstronomyShow) error {
	if _, ok := f.store.shows[show.ID]; !ok {
		return fmt.Errorf("astronomy show not found")
	}
	f.store.shows[show.ID] = show
	return nil
}

func (f *fakeAstronomyShowRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.shows[id]; !ok {
		return fmt.Errorf("astronomy show not found")
	}
	delete(f.store.shows, id)
	return nil
}

// ---------------- show-theme links ----------------

type fakeShowThemeLinkRepo struct{ store *memStore }

func (f *fakeShowThemeLinkRepo) CreateBatch(_ context.Context, links []*entity.AstronomyShowTheme) error {
	f.store.links = append(f.store.links, links...)
	return nil
}

func (f *fakeShowThemeLinkRepo) DeleteByShowID(_ context.Context, showID uuid.UUID) error {
	kept := f.store.links[:0]
	for _, link := range f.store.links {
		if link.AstronomyShowID != showID {
			kept = append(kept, link)
		}
	}
	f.store.links = kept
	return nil
}

// ---------------- planetarium dome ----------------

type fakePlanetariumDomeRepo struct{ store *memStore }

func (f *fakePlanetariumDomeRepo) Create(_ context.Context, dome *entity.PlanetariumDome) error {
	f.store.domes[dome.ID] = dome
	return nil
}

func (f *fakePlanetariumDomeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PlanetariumDome, error) {
	return f.store.domes[id], nil
}

func (f *fakePlanetariumDomeRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.PlanetariumDome, error) {
	var domes []*entity.PlanetariumDome
	for _, dome := range f.store.domes {
		domes = append(domes, dome)
	}
	return paginate(domes, limit, offset), nil
}

func (f *fakePlanetariumDomeRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.store.domes)), nil
}

func (f *fakePlanetariumDomeRepo) Update(_ context.Context, dome *entity.PlanetariumDome) error {
	if _, ok := f.store.domes[dome.ID]; !ok {
		return fmt.Errorf("planetarium dome not found")
	}
	f.store.domes[dome.ID] = dome
	return nil
}

func (f *fakePlanetariumDomeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.domes[id]; !ok {
		return fmt.Errorf("planetarium dome not found")
	}
	delete(f.store.domes, id)
	return nil
}

// ---------------- show session ----------------

type fakeShowSessionRepo struct{ store *memStore }

func (f *fakeShowSessionRepo) Create(_ context.Context, session *entity.ShowSession) error {
	f.store.showSessions[session.ID] = session
	return nil
}

func (f *fakeShowSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ShowSession, error) {
	return f.store.showSessions[id], nil
}

func (f *fakeShowSessionRepo) FindDetailByID(_ context.Context, id uuid.UUID) (*repository.ShowSessionDetailRow, error) {
	session, ok := f.store.showSessions[id]
	if !ok {
		return nil, nil
	}
	show := f.store.shows[session.AstronomyShowID]
	dome := f.store.domes[session.PlanetariumDomeID]
	if show == nil || dome == nil {
		return nil, nil
	}
	return &repository.ShowSessionDetailRow{
		ShowSession: *session,
		Show:        *show,
		Dome:        *dome,
	}, nil
}

func (f *fakeShowSessionRepo) FindAll(_ context.Context, limit, offset int) ([]*repository.ShowSessionListRow, error) {
	var rows []*repository.ShowSessionListRow
	for _, session := range f.store.showSessions {
		row := &repository.ShowSessionListRow{ShowSession: *session}
		if show, ok := f.store.shows[session.AstronomyShowID]; ok {
			row.ShowTitle = show.Title
		}
		if dome, ok := f.store.domes[session.PlanetariumDomeID]; ok {
			row.DomeName = dome.Name
		}
		rows = append(rows, row)
	}
	return paginate(rows, limit, offset), nil
}

func (f *fakeShowSessionRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.store.showSessions)), nil
}

func (f *fakeShowSessionRepo) Update(_ context.Context, session *entity.ShowSession) error {
	if _, ok := f.store.showSessions[session.ID]; !ok {
		return fmt.Errorf("show session not found")
	}
	f.store.showSessions[session.ID] = session
	return nil
}

func (f *fakeShowSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.showSessions[id]; !ok {
		return fmt.Errorf("show session not found")
	}
	delete(f.store.showSessions, id)
	return nil
}

// ---------------- reservation ----------------

type fakeReservationRepo struct{ store *memStore }

func (f *fakeReservationRepo) ownerEmail(userID uuid.UUID) string {
	if user, ok := f.store.users[userID]; ok {
		return user.Email
	}
	return ""
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	f.store.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*repository.ReservationRow, error) {
	reservation, ok := f.store.reservations[id]
	if !ok || reservation.UserID != userID {
		return nil, nil
	}
	return &repository.ReservationRow{
		Reservation: *reservation,
		OwnerEmail:  f.ownerEmail(reservation.UserID),
	}, nil
}

func (f *fakeReservationRepo) FindAllByUser(_ context.Context, userID uuid.UUID, search string, limit, offset int) ([]*repository.ReservationRow, error) {
	var rows []*repository.ReservationRow
	for _, reservation := range f.store.reservations {
		if reservation.UserID != userID {
			continue
		}
		email := f.ownerEmail(reservation.UserID)
		if !matches(search, email) {
			continue
		}
		rows = append(rows, &repository.ReservationRow{
			Reservation: *reservation,
			OwnerEmail:  email,
		})
	}
	return paginate(rows, limit, offset), nil
}

func (f *fakeReservationRepo) CountByUser(_ context.Context, userID uuid.UUID, search string) (int64, error) {
	var total int64
	for _, reservation := range f.store.reservations {
		if reservation.UserID == userID && matches(search, f.ownerEmail(reservation.UserID)) {
			total++
		}
	}
	return total, nil
}

func (f *fakeReservationRepo) DeleteForUser(_ context.Context, id, userID uuid.UUID) error {
	reservation, ok := f.store.reservations[id]
	if !ok || reservation.UserID != userID {
		return fmt.Errorf("reservation not found")
	}
	delete(f.store.reservations, id)
	return nil
}

// ---------------- ticket ----------------

type fakeTicketRepo struct{ store *memStore }

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	f.store.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return f.store.tickets[id], nil
}

func (f *fakeTicketRepo) listRow(ticket *entity.Ticket) *repository.TicketListRow {
	row := &repository.TicketListRow{Ticket: *ticket}
	if session, ok := f.store.showSessions[ticket.ShowSessionID]; ok {
		row.ShowTime = session.ShowTime
		if show, ok := f.store.shows[session.AstronomyShowID]; ok {
			row.ShowTitle = show.Title
		}
	}
	if reservation, ok := f.store.reservations[ticket.ReservationID]; ok {
		if user, ok := f.store.users[reservation.UserID]; ok {
			row.OwnerEmail = user.Email
		}
	}
	return row
}

func (f *fakeTicketRepo) FindDetailByID(_ context.Context, id uuid.UUID) (*repository.TicketDetailRow, error) {
	ticket, ok := f.store.tickets[id]
	if !ok {
		return nil, nil
	}
	listRow := f.listRow(ticket)
	detail := &repository.TicketDetailRow{
		Ticket:     *ticket,
		ShowTitle:  listRow.ShowTitle,
		ShowTime:   listRow.ShowTime,
		OwnerEmail: listRow.OwnerEmail,
	}
	if session, ok := f.store.showSessions[ticket.ShowSessionID]; ok {
		if dome, ok := f.store.domes[session.PlanetariumDomeID]; ok {
			detail.DomeName = dome.Name
		}
	}
	if reservation, ok := f.store.reservations[ticket.ReservationID]; ok {
		detail.ReservationCreatedAt = reservation.CreatedAt
	}
	return detail, nil
}

func (f *fakeTicketRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*repository.TicketListRow, error) {
	var rows []*repository.TicketListRow
	for _, ticket := range f.store.tickets {
		row := f.listRow(ticket)
		if matches(search, fmt.Sprint(row.Row), fmt.Sprint(row.Seat), row.OwnerEmail, row.ShowTitle) {
			rows = append(rows, row)
		}
	}
	return paginate(rows, limit, offset), nil
}

func (f *fakeTicketRepo) CountAll(_ context.Context, search string) (int64, error) {
	var total int64
	for _, ticket := range f.store.tickets {
		row := f.listRow(ticket)
		if matches(search, fmt.Sprint(row.Row), fmt.Sprint(row.Seat), row.OwnerEmail, row.ShowTitle) {
			total++
		}
	}
	return total, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *entity.Ticket) error {
	if _, ok := f.store.tickets[ticket.ID]; !ok {
		return fmt.Errorf("ticket not found")
	}
	f.store.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.tickets[id]; !ok {
		return fmt.Errorf("ticket not found")
	}
	delete(f.store.tickets, id)
	return nil
}

func (f *fakeTicketRepo) ExistsForSeat(_ context.Context, sessionID uuid.UUID, row, seat int, excludeID uuid.UUID) (bool, error) {
	for _, ticket := range f.store.tickets {
		if ticket.ShowSessionID == sessionID && ticket.Row == row && ticket.Seat == seat && ticket.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTicketRepo) FindByReservationIDs(_ context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]*entity.Ticket, error) {
	result := make(map[uuid.UUID][]*entity.Ticket)
	for _, reservationID := range reservationIDs {
		for _, ticket := range f.store.tickets {
			if ticket.ReservationID == reservationID {
				result[reservationID] = append(result[reservationID], ticket)
			}
		}
	}
	return result, nil
}

// ---------------- helpers ----------------

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
