package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

func studentSession(username string) models.Session {
	return models.Session{Institution: "campus", Username: username, Role: models.RoleStudent}
}

func wardenSession() models.Session {
	return models.Session{Institution: "campus", Username: "warden", Role: models.RoleWarden}
}

func TestMedicineRequestService_CreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	request, err := svc.Create(studentSession("alice"), "Paracetamol", "headache")
	require.NoError(t, err)

	assert.Equal(t, 1, request.ID)
	assert.Equal(t, models.MedicineRequestStatusPending, request.Status)
	assert.Equal(t, models.WardenNoteDefault, request.WardenNote)
}

func TestMedicineRequestService_ResolveFulfillmentDecrementsStock(t *testing.T) {
	repos := newTestRepos(t)
	medSvc := NewMedicineService(repos.Medicines)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	_, err := medSvc.Upsert("Paracetamol", "Painkiller", 3, "2026-01-01", "2027-01-01")
	require.NoError(t, err)
	request, err := svc.Create(studentSession("alice"), "Paracetamol", "headache")
	require.NoError(t, err)

	err = svc.Resolve(wardenSession(), request.ID, models.MedicineRequestStatusReady, "collect at clinic")
	require.NoError(t, err)

	meds, err := medSvc.List("", "")
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "2", meds[0].StockCount)

	requests, err := svc.List(wardenSession())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.MedicineRequestStatusReady, requests[0].Status)
	assert.Equal(t, "collect at clinic", requests[0].WardenNote)
}

func TestMedicineRequestService_ResolveRefusedAtZeroStock(t *testing.T) {
	repos := newTestRepos(t)
	medSvc := NewMedicineService(repos.Medicines)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	_, err := medSvc.Upsert("Paracetamol", "Painkiller", 0, "2026-01-01", "2027-01-01")
	require.NoError(t, err)
	request, err := svc.Create(studentSession("alice"), "Paracetamol", "headache")
	require.NoError(t, err)

	err = svc.Resolve(wardenSession(), request.ID, models.MedicineRequestStatusReady, "")
	assert.ErrorIs(t, err, apperrors.ErrOutOfStock)

	// The refused transition must leave both tables untouched.
	meds, err := medSvc.List("", "")
	require.NoError(t, err)
	assert.Equal(t, "0", meds[0].StockCount)

	requests, err := svc.List(wardenSession())
	require.NoError(t, err)
	assert.Equal(t, models.MedicineRequestStatusPending, requests[0].Status)
}

func TestMedicineRequestService_ResolveRefusedForMissingMedicine(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	request, err := svc.Create(studentSession("alice"), "Unstocked", "")
	require.NoError(t, err)

	err = svc.Resolve(wardenSession(), request.ID, models.MedicineRequestStatusReady, "")
	assert.ErrorIs(t, err, apperrors.ErrMedicineNotFound)
}

func TestMedicineRequestService_ResolveUnavailableSkipsStock(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	request, err := svc.Create(studentSession("alice"), "Unstocked", "")
	require.NoError(t, err)

	// Marking unavailable never touches the stock table, so a missing
	// medicine is no obstacle.
	err = svc.Resolve(wardenSession(), request.ID, models.MedicineRequestStatusUnavailable, "out of supply")
	require.NoError(t, err)

	requests, err := svc.List(wardenSession())
	require.NoError(t, err)
	assert.Equal(t, models.MedicineRequestStatusUnavailable, requests[0].Status)
}

func TestMedicineRequestService_ResolveInvalidStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	err := svc.Resolve(wardenSession(), 1, "Done", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestMedicineRequestService_ListScopes(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineRequestService(repos.MedicineRequests, repos.Medicines)

	_, err := svc.Create(studentSession("alice"), "Paracetamol", "")
	require.NoError(t, err)
	_, err = svc.Create(studentSession("bob"), "Cetirizine", "")
	require.NoError(t, err)

	own, err := svc.List(studentSession("alice"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "alice", own[0].User)

	all, err := svc.List(wardenSession())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
