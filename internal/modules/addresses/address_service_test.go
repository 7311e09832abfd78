package addresses

import (
	"context"
	"testing"

	"contactbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker approves exactly one (username, contactID) pair.
type fakeChecker struct {
	username  string
	contactID int64
	calls     int
}

func (f *fakeChecker) CheckContactMustExist(_ context.Context, username string, contactID int64) error {
	f.calls++
	if username != f.username || contactID != f.contactID {
		return models.ErrNotFound
	}
	return nil
}

type fakeAddressRepo struct {
	addresses map[int64]*models.Address
	nextID    int64
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[int64]*models.Address), nextID: 1}
}

func (f *fakeAddressRepo) Create(_ context.Context, address *models.Address) (*models.Address, error) {
	address.ID = f.nextID
	f.nextID++
	stored := *address
	f.addresses[address.ID] = &stored
	return address, nil
}

func (f *fakeAddressRepo) FindByID(_ context.Context, id, contactID int64) (*models.Address, error) {
	address, ok := f.addresses[id]
	if !ok || address.ContactID != contactID {
		return nil, models.ErrNotFound
	}
	copied := *address
	return &copied, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, address *models.Address) (*models.Address, error) {
	stored, ok := f.addresses[address.ID]
	if !ok || stored.ContactID != address.ContactID {
		return nil, models.ErrNotFound
	}
	copied := *address
	f.addresses[address.ID] = &copied
	return address, nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, id, contactID int64) error {
	address, ok := f.addresses[id]
	if !ok || address.ContactID != contactID {
		return models.ErrNotFound
	}
	delete(f.addresses, id)
	return nil
}

func (f *fakeAddressRepo) ListByContact(_ context.Context, contactID int64) ([]models.Address, error) {
	result := make([]models.Address, 0)
	for _, address := range f.addresses {
		if address.ContactID == contactID {
			result = append(result, *address)
		}
	}
	return result, nil
}

var caller = &models.User{Username: "testtest", Name: "testtest"}
var intruder = &models.User{Username: "intruder", Name: "intruder"}

var testAddress = models.CreateAddressRequest{
	Street:     "test",
	City:       "test",
	Province:   "test",
	Country:    "test",
	PostalCode: "1234",
}

func newTestService() (*fakeAddressRepo, *fakeChecker, ServiceInterface) {
	repo := newFakeAddressRepo()
	checker := &fakeChecker{username: "testtest", contactID: 1}
	return repo, checker, NewService(repo, checker)
}

func TestAddressRoundTrip(t *testing.T) {
	_, _, svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, caller, 1, testAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ContactID)

	got, err := svc.Get(ctx, caller, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, caller, 1, created.ID, models.UpdateAddressRequest{
		Street:     "new street",
		City:       "new city",
		Province:   "new province",
		Country:    "new country",
		PostalCode: "5678",
	})
	require.NoError(t, err)
	assert.Equal(t, "new street", updated.Street)

	refetched, err := svc.Get(ctx, caller, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, refetched)

	require.NoError(t, svc.Delete(ctx, caller, 1, created.ID))
	_, err = svc.Get(ctx, caller, 1, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// Every address operation must fail with NotFound when the contact is not
// owned by the caller, even when the address row itself exists.
func TestAddressOpsRejectForeignContact(t *testing.T) {
	repo, _, svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, caller, 1, testAddress)
	require.NoError(t, err)

	_, err = svc.Create(ctx, intruder, 1, testAddress)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Get(ctx, intruder, 1, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Update(ctx, intruder, 1, created.ID, models.UpdateAddressRequest{
		Street: "x", City: "x", Province: "x", Country: "x", PostalCode: "1",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, intruder, 1, created.ID), models.ErrNotFound)

	_, err = svc.List(ctx, intruder, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The row itself is untouched.
	assert.Len(t, repo.addresses, 1)
}

func TestAddressGetUnknownID(t *testing.T) {
	_, _, svc := newTestService()

	_, err := svc.Get(context.Background(), caller, 1, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListReturnsAllForContact(t *testing.T) {
	_, checker, svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, caller, 1, testAddress)
		require.NoError(t, err)
	}

	addresses, err := svc.List(ctx, caller, 1)
	require.NoError(t, err)
	assert.Len(t, addresses, 3)
	// One ownership check per operation: three creates plus the list.
	assert.Equal(t, 4, checker.calls)
}
