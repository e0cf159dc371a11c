package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/pkg/utils"
)

type loyaltyFixture struct {
	service  LoyaltyServiceInterface
	rewards  *fakeRewardRepo
	bookings *fakeBookingRepo
	renter   utils.AuthContext
}

func newLoyaltyFixture(t *testing.T) *loyaltyFixture {
	t.Helper()
	rewards := newFakeRewardRepo()
	bookings := newFakeBookingRepo(rewards)
	return &loyaltyFixture{
		service:  NewLoyaltyService(rewards, bookings, zap.NewNop()),
		rewards:  rewards,
		bookings: bookings,
		renter:   utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleRenter},
	}
}

func TestJoinProgram(t *testing.T) {
	f := newLoyaltyFixture(t)
	program := f.rewards.addProgram("Gold", 50)

	err := f.service.Join(context.Background(), f.renter, request_models.JoinProgramRequest{
		RewardID: program.ID.String(),
	})
	require.NoError(t, err)

	enrolled, err := f.service.MyProgram(context.Background(), f.renter)
	require.NoError(t, err)
	assert.Equal(t, "Gold", enrolled.Name)
	assert.Equal(t, 50, enrolled.PointsPerBooking)
}

func TestJoinUnknownProgram(t *testing.T) {
	f := newLoyaltyFixture(t)

	err := f.service.Join(context.Background(), f.renter, request_models.JoinProgramRequest{
		RewardID: uuid.New().String(),
	})
	require.ErrorIs(t, err, utils.ErrProgramNotFound)
}

func TestJoinTwice(t *testing.T) {
	f := newLoyaltyFixture(t)
	gold := f.rewards.addProgram("Gold", 50)
	silver := f.rewards.addProgram("Silver", 25)

	err := f.service.Join(context.Background(), f.renter, request_models.JoinProgramRequest{
		RewardID: gold.ID.String(),
	})
	require.NoError(t, err)

	// One enrollment per renter, even toward a different program.
	err = f.service.Join(context.Background(), f.renter, request_models.JoinProgramRequest{
		RewardID: silver.ID.String(),
	})
	require.ErrorIs(t, err, utils.ErrAlreadyEnrolled)
}

func TestLeaveIsIdempotent(t *testing.T) {
	f := newLoyaltyFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	require.NoError(t, f.service.Leave(context.Background(), f.renter))
	require.NoError(t, f.service.Leave(context.Background(), f.renter))

	_, err := f.service.MyProgram(context.Background(), f.renter)
	require.ErrorIs(t, err, utils.ErrEnrollmentNotFound)
}

func TestMyPointsUnenrolled(t *testing.T) {
	f := newLoyaltyFixture(t)

	points, err := f.service.MyPoints(context.Background(), f.renter)
	require.NoError(t, err)
	assert.Zero(t, points.Earned)
	assert.Zero(t, points.Used)
}

func TestMyPointsDerivation(t *testing.T) {
	f := newLoyaltyFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	propertyID := uuid.New()
	f.bookings.add(f.renter.UserID, propertyID, db_models.BookingStatusActive)
	// Cancelled bookings still count toward earned points.
	f.bookings.add(f.renter.UserID, propertyID, db_models.BookingStatusCancelled)
	// Another renter's booking does not.
	f.bookings.add(uuid.New(), propertyID, db_models.BookingStatusActive)

	response, err := f.service.Redeem(context.Background(), f.renter, request_models.RedeemPointsRequest{
		Points:     30,
		PropertyID: propertyID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, response.Discount)

	points, err := f.service.MyPoints(context.Background(), f.renter)
	require.NoError(t, err)
	assert.Equal(t, 100, points.Earned)
	// Each redemption row counts a flat 10 regardless of the amount redeemed.
	assert.Equal(t, 10, points.Used)
}

func TestRedeemRequiresEnrollment(t *testing.T) {
	f := newLoyaltyFixture(t)

	_, err := f.service.Redeem(context.Background(), f.renter, request_models.RedeemPointsRequest{
		Points:     30,
		PropertyID: uuid.New().String(),
	})
	require.ErrorIs(t, err, utils.ErrNotEnrolled)
}

func TestRedeemRequiresProperty(t *testing.T) {
	f := newLoyaltyFixture(t)
	program := f.rewards.addProgram("Gold", 50)
	f.rewards.enroll(f.renter.UserID, program)

	_, err := f.service.Redeem(context.Background(), f.renter, request_models.RedeemPointsRequest{
		Points: 30,
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
