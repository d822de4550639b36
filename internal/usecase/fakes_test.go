package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// In-memory fakes for the storage/collaborator ports.

type fakeUserStorage struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[uuid.UUID]*domain.User)}
}

func (s *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	cp := *user
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStorage) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *fakeUserStorage) FindUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeBookingStorage struct {
	bookings []domain.Booking
	saveErr  error
}

func (s *fakeBookingStorage) SaveBooking(_ context.Context, booking *domain.Booking) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	booking.CreatedAt = time.Now()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *fakeBookingStorage) ListBookingsByUser(_ context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeEventChecker struct {
	events   map[string]*domain.Event
	checkErr error
}

func (c *fakeEventChecker) CheckEventExists(_ context.Context, eventID string) (*domain.Event, error) {
	if c.checkErr != nil {
		return nil, c.checkErr
	}
	e, ok := c.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

type fakePublisher struct {
	published []payloads.BookingNotification
	fail      bool
}

func (p *fakePublisher) PublishBookingNotification(_ context.Context, payload payloads.BookingNotification) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, payload)
	return nil
}
