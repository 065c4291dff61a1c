package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

func TestParkingService_CreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewParkingService(repos.Parking)

	request, err := svc.Create(studentSession("alice"), "KA-01-AB-1234")
	require.NoError(t, err)

	assert.Equal(t, 1, request.ID)
	assert.Equal(t, models.ParkingStatusPending, request.Status)
	assert.Equal(t, models.ParkingSlotAwaiting, request.Slot)
}

func TestParkingService_ResolveAcceptRequiresSlot(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewParkingService(repos.Parking)

	request, err := svc.Create(studentSession("alice"), "KA-01-AB-1234")
	require.NoError(t, err)

	err = svc.Resolve(wardenSession(), request.ID, "  ", models.ParkingStatusAccepted)
	assert.Error(t, err)

	require.NoError(t, svc.Resolve(wardenSession(), request.ID, "B-12", models.ParkingStatusAccepted))

	all, err := svc.List(wardenSession())
	require.NoError(t, err)
	assert.Equal(t, models.ParkingStatusAccepted, all[0].Status)
	assert.Equal(t, "B-12", all[0].Slot)
}

func TestParkingService_ResolveRejectKeepsSlotPlaceholder(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewParkingService(repos.Parking)

	request, err := svc.Create(studentSession("alice"), "KA-01-AB-1234")
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(wardenSession(), request.ID, "", models.ParkingStatusRejected))

	all, err := svc.List(wardenSession())
	require.NoError(t, err)
	assert.Equal(t, models.ParkingStatusRejected, all[0].Status)
	assert.Equal(t, models.ParkingSlotAwaiting, all[0].Slot)
}

func TestParkingService_ResolveInvalidStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewParkingService(repos.Parking)

	err := svc.Resolve(wardenSession(), 1, "", "Waitlisted")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
