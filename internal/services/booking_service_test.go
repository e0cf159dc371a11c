package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/pkg/utils"
)

type bookingFixture struct {
	service    BookingServiceInterface
	bookings   *fakeBookingRepo
	properties *fakePropertyRepo
	profiles   *fakeProfileRepo
	rewards    *fakeRewardRepo

	renter   utils.AuthContext
	agent    utils.AuthContext
	property *db_models.Property
	card     *db_models.Card
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		properties: newFakePropertyRepo(),
		profiles:   newFakeProfileRepo(),
		rewards:    newFakeRewardRepo(),
		renter:     utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleRenter},
		agent:      utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent},
	}
	f.bookings = newFakeBookingRepo(f.rewards)
	f.service = NewBookingService(f.bookings, f.properties, f.profiles, f.rewards, zap.NewNop())

	f.property = f.properties.add(1500, true, f.agent.UserID)
	address := f.profiles.addAddress(f.renter.UserID)
	f.card = f.profiles.addCard(f.renter.UserID, address.ID)
	return f
}

func (f *bookingFixture) request() request_models.CreateBookingRequest {
	return request_models.CreateBookingRequest{
		PropertyID:  f.property.ID.String(),
		RentalStart: "2026-01-01",
		RentalEnd:   "2026-01-31",
		CardID:      f.card.ID.String(),
	}
}

func TestCreateBookingRequiresCard(t *testing.T) {
	f := newBookingFixture(t)

	request := f.request()
	request.CardID = ""
	_, err := f.service.Create(context.Background(), f.renter, request)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateBookingUnknownProperty(t *testing.T) {
	f := newBookingFixture(t)

	request := f.request()
	request.PropertyID = uuid.New().String()
	_, err := f.service.Create(context.Background(), f.renter, request)
	require.ErrorIs(t, err, utils.ErrPropertyNotFound)
}

func TestCreateBookingUnavailableProperty(t *testing.T) {
	f := newBookingFixture(t)
	f.property.Available = false

	_, err := f.service.Create(context.Background(), f.renter, f.request())
	require.ErrorIs(t, err, utils.ErrPropertyNotFound)
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	f := newBookingFixture(t)

	request := f.request()
	request.RentalStart = "2026-01-31"
	request.RentalEnd = "2026-01-01"
	_, err := f.service.Create(context.Background(), f.renter, request)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	request.RentalEnd = "2026-01-31"
	_, err = f.service.Create(context.Background(), f.renter, request)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateBookingProratesMonthlyRate(t *testing.T) {
	f := newBookingFixture(t)

	// 30 days at a 1500 monthly rate charges exactly one month.
	response, err := f.service.Create(context.Background(), f.renter, f.request())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, response.Total)
	assert.Equal(t, db_models.BookingStatusActive, response.Status)
	assert.Equal(t, "**** **** **** 1111", response.CardNumber)

	request := f.request()
	request.RentalEnd = "2026-01-16"
	response, err = f.service.Create(context.Background(), f.renter, request)
	require.NoError(t, err)
	assert.Equal(t, 750.0, response.Total)
}

func TestCreateBookingCardMustBelongToRenter(t *testing.T) {
	f := newBookingFixture(t)

	other := uuid.New()
	address := f.profiles.addAddress(other)
	foreignCard := f.profiles.addCard(other, address.ID)

	request := f.request()
	request.CardID = foreignCard.ID.String()
	_, err := f.service.Create(context.Background(), f.renter, request)
	require.ErrorIs(t, err, utils.ErrCardNotFound)
}

func TestCreateBookingAppliesPointsDiscount(t *testing.T) {
	f := newBookingFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	request := f.request()
	request.UsePoints = true
	request.PointsToUse = 300
	response, err := f.service.Create(context.Background(), f.renter, request)
	require.NoError(t, err)

	// 300 points knock $30 off the 1500 total.
	assert.Equal(t, 1470.0, response.Total)
	require.Len(t, f.rewards.redemptions, 1)
}

func TestCreateBookingDiscountNeverGoesNegative(t *testing.T) {
	f := newBookingFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	request := f.request()
	request.UsePoints = true
	request.PointsToUse = 100000
	response, err := f.service.Create(context.Background(), f.renter, request)
	require.NoError(t, err)
	assert.Equal(t, 0.0, response.Total)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.service.Create(context.Background(), f.renter, f.request())
	require.NoError(t, err)

	response, err := f.service.Cancel(context.Background(), f.renter, created.ID)
	require.NoError(t, err)
	assert.False(t, response.PointsRefunded)
	assert.Equal(t, "Booking cancelled, refund issued to your card", response.Message)

	// A second cancel is rejected, but the row survives for point accounting.
	_, err = f.service.Cancel(context.Background(), f.renter, created.ID)
	require.ErrorIs(t, err, utils.ErrBookingCancelled)
	require.Len(t, f.bookings.bookings, 1)
}

func TestCancelBookingRefundsRedeemedPoints(t *testing.T) {
	f := newBookingFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	request := f.request()
	request.UsePoints = true
	request.PointsToUse = 300
	created, err := f.service.Create(context.Background(), f.renter, request)
	require.NoError(t, err)
	require.Len(t, f.rewards.redemptions, 1)

	response, err := f.service.Cancel(context.Background(), f.renter, created.ID)
	require.NoError(t, err)
	assert.True(t, response.PointsRefunded)
	assert.Equal(t, "Booking cancelled, points refunded", response.Message)
	require.Empty(t, f.rewards.redemptions)
}

func TestCancelBookingRefundIsAtomic(t *testing.T) {
	f := newBookingFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	request := f.request()
	request.UsePoints = true
	request.PointsToUse = 300
	created, err := f.service.Create(context.Background(), f.renter, request)
	require.NoError(t, err)

	// A failed cancel must leave both the redemption and the booking
	// untouched; the refund and the status flip share one transaction.
	f.bookings.failCancel = errors.New("connection reset")
	_, err = f.service.Cancel(context.Background(), f.renter, created.ID)
	require.ErrorIs(t, err, utils.ErrDatabaseError)
	require.Len(t, f.rewards.redemptions, 1)
	for _, booking := range f.bookings.bookings {
		assert.Equal(t, db_models.BookingStatusActive, booking.Status)
	}

	f.bookings.failCancel = nil
	response, err := f.service.Cancel(context.Background(), f.renter, created.ID)
	require.NoError(t, err)
	assert.True(t, response.PointsRefunded)
	require.Empty(t, f.rewards.redemptions)
}

func TestCancelBookingAuthorization(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.service.Create(context.Background(), f.renter, f.request())
	require.NoError(t, err)

	stranger := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleRenter}
	_, err = f.service.Cancel(context.Background(), stranger, created.ID)
	require.ErrorIs(t, err, utils.ErrNotOwner)

	// The agent managing the property may cancel on the renter's behalf.
	_, err = f.service.Cancel(context.Background(), f.agent, created.ID)
	require.NoError(t, err)
}

func TestCancelBookingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.Cancel(context.Background(), f.renter, uuid.New().String())
	require.ErrorIs(t, err, utils.ErrBookingNotFound)
}
