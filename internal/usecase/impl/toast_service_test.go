package impl

import (
	"testing"
	"time"

	"fivestar/internal/domain/entity"
	"fivestar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToastTTL = 40 * time.Millisecond

func createTestToastService() usecase.ToastUsecase {
	return NewToastService(testToastTTL)
}

func pushToast(svc usecase.ToastUsecase, title string) entity.Toast {
	id := svc.Push(&entity.PushMessage{
		Title: title,
		Body:  "body of " + title,
		Icon:  entity.DefaultNotificationIcon,
	})

	return entity.Toast{ID: id, Title: title}
}

func TestToastService_Push(t *testing.T) {
	svc := createTestToastService()

	id := svc.Push(&entity.PushMessage{
		Title: "Match starting",
		Body:  "Kickoff in 5 minutes",
		Icon:  "/icons/match.png",
		Data:  map[string]string{"url": "/match/7"},
	})

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "Match starting", active[0].Title)
	assert.Equal(t, "Kickoff in 5 minutes", active[0].Body)
	assert.Equal(t, "/icons/match.png", active[0].Icon)
	assert.Equal(t, "/match/7", active[0].Data["url"])
	assert.False(t, active[0].CreatedAt.IsZero())
}

func TestToastService_Active_InsertionOrder(t *testing.T) {
	svc := createTestToastService()

	first := pushToast(svc, "first")
	second := pushToast(svc, "second")
	third := pushToast(svc, "third")

	active := svc.Active()
	require.Len(t, active, 3)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
	assert.Equal(t, third.ID, active[2].ID)
}

func TestToastService_ExpiresAfterTTL(t *testing.T) {
	svc := createTestToastService()

	pushToast(svc, "ephemeral")
	require.Len(t, svc.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(svc.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastService_IndependentExpiries(t *testing.T) {
	svc := createTestToastService()

	pushToast(svc, "early")
	time.Sleep(testToastTTL / 2)
	late := pushToast(svc, "late")

	// The early toast expires first; the late one is still on screen.
	assert.Eventually(t, func() bool {
		active := svc.Active()

		return len(active) == 1 && active[0].ID == late.ID
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(svc.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastService_Remove(t *testing.T) {
	svc := createTestToastService()

	first := pushToast(svc, "first")
	second := pushToast(svc, "second")

	svc.Remove(first.ID)

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestToastService_Remove_UnknownIDIsNoop(t *testing.T) {
	svc := createTestToastService()

	first := pushToast(svc, "first")
	svc.Remove(first.ID)
	svc.Remove(first.ID)

	assert.Empty(t, svc.Active())
}

func TestToastService_NonPositiveTTLUsesDefault(t *testing.T) {
	svc := NewToastService(0)

	pushToast(svc, "durable")

	// Well inside the default window the toast must still be visible.
	time.Sleep(2 * testToastTTL)
	assert.Len(t, svc.Active(), 1)
}
