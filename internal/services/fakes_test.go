package services

import (
	"context"

	"github.com/google/uuid"
	"homestead/internal/models/db_models"
	"homestead/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users   map[uuid.UUID]*db_models.User
	agents  map[uuid.UUID]*db_models.AgentProfile
	renters map[uuid.UUID]*db_models.RenterProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[uuid.UUID]*db_models.User{},
		agents:  map[uuid.UUID]*db_models.AgentProfile{},
		renters: map[uuid.UUID]*db_models.RenterProfile{},
	}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) CreateWithProfile(_ context.Context, user *db_models.User, profile func(uuid.UUID) interface{}) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	if profile == nil {
		return nil
	}
	switch row := profile(user.ID).(type) {
	case *db_models.AgentProfile:
		f.agents[user.ID] = row
	case *db_models.RenterProfile:
		f.renters[user.ID] = row
	}
	return nil
}

func (f *fakeUserRepo) FindAgentProfile(_ context.Context, userID uuid.UUID) (*db_models.AgentProfile, error) {
	return f.agents[userID], nil
}

func (f *fakeUserRepo) FindRenterProfile(_ context.Context, userID uuid.UUID) (*db_models.RenterProfile, error) {
	return f.renters[userID], nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*db_models.Property
	subtypes   map[uuid.UUID]interface{}
	links      map[uuid.UUID]uuid.UUID // property -> managing agent
	records    []repositories.PropertyRecord
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		properties: map[uuid.UUID]*db_models.Property{},
		subtypes:   map[uuid.UUID]interface{}{},
		links:      map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakePropertyRepo) add(price float64, available bool, agentID uuid.UUID) *db_models.Property {
	property := &db_models.Property{
		Type:        db_models.PropertyTypeHouse,
		Price:       price,
		Available:   available,
		City:        "Springfield",
		ListingType: db_models.ListingTypeRent,
	}
	property.ID = uuid.New()
	f.properties[property.ID] = property
	f.links[property.ID] = agentID
	return property
}

func (f *fakePropertyRepo) CreateWithSubtype(_ context.Context, p *db_models.Property, subtype func(uuid.UUID) interface{}, agentID uuid.UUID) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.properties[p.ID] = p
	f.subtypes[p.ID] = subtype(p.ID)
	f.links[p.ID] = agentID
	return nil
}

func (f *fakePropertyRepo) UpdateWithSubtype(_ context.Context, p *db_models.Property, subtype func(uuid.UUID) interface{}) error {
	f.properties[p.ID] = p
	f.subtypes[p.ID] = subtype(p.ID)
	return nil
}

func (f *fakePropertyRepo) DeleteWithSubtype(_ context.Context, propertyID uuid.UUID) error {
	delete(f.properties, propertyID)
	delete(f.subtypes, propertyID)
	delete(f.links, propertyID)
	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) FindRecordByID(_ context.Context, id uuid.UUID) (*repositories.PropertyRecord, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, nil
	}
	record := repositories.PropertyRecord{
		ID:          p.ID,
		Type:        p.Type,
		Description: p.Description,
		Price:       p.Price,
		Available:   p.Available,
		City:        p.City,
		State:       p.State,
		ImageURL:    p.ImageURL,
		ListingType: p.ListingType,
	}
	switch st := f.subtypes[id].(type) {
	case *db_models.House:
		record.Rooms, record.Sqft = st.Rooms, st.Sqft
	case *db_models.Apartment:
		record.Rooms, record.Sqft = st.Rooms, st.Sqft
	case *db_models.Vacation:
		record.Rooms, record.Sqft = st.Rooms, st.Sqft
	case *db_models.Commercial:
		record.Sqft = st.Sqft
		record.BusinessType = &st.BusinessType
	case *db_models.Land:
		record.Sqft = st.Area
	}
	return &record, nil
}

func (f *fakePropertyRepo) Manages(_ context.Context, agentID, propertyID uuid.UUID) (bool, error) {
	return f.links[propertyID] == agentID, nil
}

func (f *fakePropertyRepo) Search(_ context.Context, _ repositories.PropertyFilter) ([]repositories.PropertyRecord, error) {
	return f.records, nil
}

func (f *fakePropertyRepo) ListByAgent(_ context.Context, _ uuid.UUID) ([]repositories.PropertyRecord, error) {
	return f.records, nil
}

func (f *fakePropertyRepo) ListByNeighborhood(_ context.Context, _ uuid.UUID) ([]repositories.PropertyRecord, error) {
	return f.records, nil
}

type fakeRewardRepo struct {
	programs    map[uuid.UUID]*db_models.RewardProgram
	enrollments map[uuid.UUID]*db_models.RewardEnrollment // keyed by user
	redemptions map[uuid.UUID]*db_models.PointRedemption
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{
		programs:    map[uuid.UUID]*db_models.RewardProgram{},
		enrollments: map[uuid.UUID]*db_models.RewardEnrollment{},
		redemptions: map[uuid.UUID]*db_models.PointRedemption{},
	}
}

func (f *fakeRewardRepo) addProgram(name string, pointsPerBooking int) *db_models.RewardProgram {
	program := &db_models.RewardProgram{Name: name, PointsPerBooking: pointsPerBooking}
	program.ID = uuid.New()
	f.programs[program.ID] = program
	return program
}

func (f *fakeRewardRepo) enroll(userID uuid.UUID, program *db_models.RewardProgram) *db_models.RewardEnrollment {
	enrollment := &db_models.RewardEnrollment{UserID: userID, ProgramID: program.ID, Program: *program}
	enrollment.ID = uuid.New()
	f.enrollments[userID] = enrollment
	return enrollment
}

func (f *fakeRewardRepo) ListPrograms(_ context.Context) ([]db_models.RewardProgram, error) {
	programs := make([]db_models.RewardProgram, 0, len(f.programs))
	for _, p := range f.programs {
		programs = append(programs, *p)
	}
	return programs, nil
}

func (f *fakeRewardRepo) FindProgramByID(_ context.Context, id uuid.UUID) (*db_models.RewardProgram, error) {
	return f.programs[id], nil
}

func (f *fakeRewardRepo) FindEnrollmentByUser(_ context.Context, userID uuid.UUID) (*db_models.RewardEnrollment, error) {
	return f.enrollments[userID], nil
}

func (f *fakeRewardRepo) CreateEnrollment(_ context.Context, enrollment *db_models.RewardEnrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	if program, ok := f.programs[enrollment.ProgramID]; ok {
		enrollment.Program = *program
	}
	f.enrollments[enrollment.UserID] = enrollment
	return nil
}

func (f *fakeRewardRepo) DeleteEnrollmentByUser(_ context.Context, userID uuid.UUID) error {
	delete(f.enrollments, userID)
	return nil
}

func (f *fakeRewardRepo) CreateRedemption(_ context.Context, redemption *db_models.PointRedemption) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}
	f.redemptions[redemption.ID] = redemption
	return nil
}

func (f *fakeRewardRepo) CountRedemptions(_ context.Context, enrollmentID uuid.UUID) (int64, error) {
	var count int64
	for _, r := range f.redemptions {
		if r.EnrollmentID == enrollmentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRewardRepo) FindRedemption(_ context.Context, enrollmentID, propertyID uuid.UUID) (*db_models.PointRedemption, error) {
	for _, r := range f.redemptions {
		if r.EnrollmentID == enrollmentID && r.PropertyID == propertyID {
			return r, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*db_models.Booking
	cards    map[uuid.UUID]uuid.UUID // booking -> card
	records  []repositories.BookingRecord
	rewards  *fakeRewardRepo

	failCancel error
}

func newFakeBookingRepo(rewards *fakeRewardRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[uuid.UUID]*db_models.Booking{},
		cards:    map[uuid.UUID]uuid.UUID{},
		rewards:  rewards,
	}
}

func (f *fakeBookingRepo) CreateWithCard(ctx context.Context, b *db_models.Booking, cardID uuid.UUID, redemption *db_models.PointRedemption) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.bookings[b.ID] = b
	f.cards[b.ID] = cardID
	if redemption != nil {
		return f.rewards.CreateRedemption(ctx, redemption)
	}
	return nil
}

func (f *fakeBookingRepo) add(userID, propertyID uuid.UUID, status string) *db_models.Booking {
	booking := &db_models.Booking{UserID: userID, PropertyID: propertyID, Status: status}
	booking.ID = uuid.New()
	f.bookings[booking.ID] = booking
	return booking
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]repositories.BookingRecord, error) {
	return f.records, nil
}

func (f *fakeBookingRepo) ListByAgent(_ context.Context, _ uuid.UUID) ([]repositories.BookingRecord, error) {
	return f.records, nil
}

func (f *fakeBookingRepo) CancelWithRefund(_ context.Context, bookingID uuid.UUID, redemptionID *uuid.UUID) error {
	if f.failCancel != nil {
		return f.failCancel
	}
	if redemptionID != nil {
		delete(f.rewards.redemptions, *redemptionID)
	}
	if b, ok := f.bookings[bookingID]; ok {
		b.Status = db_models.BookingStatusCancelled
	}
	return nil
}

type fakeProfileRepo struct {
	addresses map[uuid.UUID]*db_models.Address
	cards     map[uuid.UUID]*db_models.Card
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		addresses: map[uuid.UUID]*db_models.Address{},
		cards:     map[uuid.UUID]*db_models.Card{},
	}
}

func (f *fakeProfileRepo) addAddress(userID uuid.UUID) *db_models.Address {
	address := &db_models.Address{UserID: userID, Street: "1 Main St", City: "Springfield", Zip: "01101"}
	address.ID = uuid.New()
	f.addresses[address.ID] = address
	return address
}

func (f *fakeProfileRepo) addCard(userID, billingAddressID uuid.UUID) *db_models.Card {
	card := &db_models.Card{
		UserID:           userID,
		Number:           "4111111111111111",
		ExpiryMonth:      12,
		ExpiryYear:       2030,
		CVV:              "123",
		BillingAddressID: billingAddressID,
	}
	card.ID = uuid.New()
	f.cards[card.ID] = card
	return card
}

func (f *fakeProfileRepo) CreateAddress(_ context.Context, address *db_models.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	f.addresses[address.ID] = address
	return nil
}

func (f *fakeProfileRepo) ListAddresses(_ context.Context, userID uuid.UUID) ([]db_models.Address, error) {
	var addresses []db_models.Address
	for _, a := range f.addresses {
		if a.UserID == userID {
			addresses = append(addresses, *a)
		}
	}
	return addresses, nil
}

func (f *fakeProfileRepo) FindAddress(_ context.Context, id, userID uuid.UUID) (*db_models.Address, error) {
	if a, ok := f.addresses[id]; ok && a.UserID == userID {
		return a, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) DeleteAddress(_ context.Context, id, _ uuid.UUID) error {
	delete(f.addresses, id)
	return nil
}

func (f *fakeProfileRepo) CountCardsByAddress(_ context.Context, addressID, userID uuid.UUID) (int64, error) {
	var count int64
	for _, card := range f.cards {
		if card.BillingAddressID == addressID && card.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileRepo) CreateCard(_ context.Context, card *db_models.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakeProfileRepo) ListCards(_ context.Context, userID uuid.UUID) ([]db_models.Card, error) {
	var cards []db_models.Card
	for _, card := range f.cards {
		if card.UserID == userID {
			cards = append(cards, *card)
		}
	}
	return cards, nil
}

func (f *fakeProfileRepo) FindCard(_ context.Context, id, userID uuid.UUID) (*db_models.Card, error) {
	if card, ok := f.cards[id]; ok && card.UserID == userID {
		return card, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) DeleteCard(_ context.Context, id, _ uuid.UUID) error {
	delete(f.cards, id)
	return nil
}
