package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/BookingApp/internal/domain"
)

func newBookingFixtures() (*fakeBookingStorage, *fakeEventChecker, *fakePublisher) {
	storage := &fakeBookingStorage{}
	checker := &fakeEventChecker{events: map[string]*domain.Event{
		"E1": {ID: "E1", Name: "Concert", Location: "Hall A", AvailableTickets: 100, Price: 25.0},
	}}
	publisher := &fakePublisher{}
	return storage, checker, publisher
}

func TestCreateBookingStampsOwner(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	ownerID := uuid.New()
	booking, event, err := uc.CreateBooking(context.Background(), ownerID, "E1", 50.0, 2)
	require.NoError(t, err)

	assert.Equal(t, ownerID, booking.UserID)
	assert.Equal(t, "E1", booking.EventID)
	assert.Equal(t, 50.0, booking.Amount)
	assert.Equal(t, 2, booking.NumTickets)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, "Concert", event.Name)

	require.Len(t, storage.bookings, 1)
	assert.Equal(t, ownerID, storage.bookings[0].UserID)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, ownerID, publisher.published[0].UserID)
	assert.Equal(t, booking.ID, publisher.published[0].BookingID)
}

func TestCreateBookingEventNotFound(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	_, _, err := uc.CreateBooking(context.Background(), uuid.New(), "NOPE", 50.0, 2)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	// hard precondition: nothing saved, nothing published
	assert.Empty(t, storage.bookings)
	assert.Empty(t, publisher.published)
}

func TestCreateBookingEventCheckFailure(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	checker.checkErr = errors.New("event service is down")
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	_, _, err := uc.CreateBooking(context.Background(), uuid.New(), "E1", 50.0, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
	assert.Empty(t, storage.bookings)
}

func TestCreateBookingValidation(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	tests := []struct {
		name       string
		eventID    string
		amount     float64
		numTickets int
	}{
		{name: "zero amount", eventID: "E1", amount: 0, numTickets: 2},
		{name: "negative amount", eventID: "E1", amount: -5, numTickets: 2},
		{name: "zero tickets", eventID: "E1", amount: 50, numTickets: 0},
		{name: "negative tickets", eventID: "E1", amount: 50, numTickets: -1},
		{name: "empty event id", eventID: "", amount: 50, numTickets: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.CreateBooking(context.Background(), uuid.New(), tt.eventID, tt.amount, tt.numTickets)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Empty(t, storage.bookings)
}

func TestCreateBookingStorageFailure(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	storage.saveErr = errors.New("db is down")
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	_, _, err := uc.CreateBooking(context.Background(), uuid.New(), "E1", 50.0, 2)
	require.Error(t, err)

	// ничего не сохранено — нечего и анонсировать
	assert.Empty(t, publisher.published)
}

func TestCreateBookingPublishFailureIsSwallowed(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	publisher.fail = true
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())

	ownerID := uuid.New()
	booking, _, err := uc.CreateBooking(context.Background(), ownerID, "E1", 50.0, 2)

	// publish is best-effort: the request succeeds, the booking stays
	require.NoError(t, err)
	require.Len(t, storage.bookings, 1)
	assert.Equal(t, booking.ID, storage.bookings[0].ID)
}

func TestListBookingsScopedToOwner(t *testing.T) {
	storage, checker, publisher := newBookingFixtures()
	uc := NewBookingUseCase(storage, checker, publisher, testLogger())
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, _, err := uc.CreateBooking(ctx, alice, "E1", 50.0, 2)
	require.NoError(t, err)
	_, _, err = uc.CreateBooking(ctx, bob, "E1", 25.0, 1)
	require.NoError(t, err)
	_, _, err = uc.CreateBooking(ctx, alice, "E1", 75.0, 3)
	require.NoError(t, err)

	aliceBookings, err := uc.ListBookings(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceBookings, 2)
	for _, b := range aliceBookings {
		assert.Equal(t, alice, b.UserID)
	}

	bobBookings, err := uc.ListBookings(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobBookings, 1)
	assert.Equal(t, 25.0, bobBookings[0].Amount)
}
