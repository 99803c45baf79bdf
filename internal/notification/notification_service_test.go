package notification_test

import (
	"context"
	"errors"
	"testing"

	"iakwe-hr/internal/events"
	"iakwe-hr/internal/notification"
	notificationerrors "iakwe-hr/internal/notification/errors"
	"iakwe-hr/internal/notification/mock"
	"iakwe-hr/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func decidedEvent(status string) events.LeaveDecidedEvent {
	return events.LeaveDecidedEvent{
		EventType:       events.EventLeaveDecided,
		RequestID:       "req-1",
		LeaveID:         uuid.New().String(),
		ReferenceNumber: "LV-000007",
		CompanyID:       uuid.New().String(),
		EmployeeID:      uuid.New().String(),
		Status:          status,
		DecidedBy:       "Kalani Jibon",
		StartDate:       "2026-12-24",
		EndDate:         "2026-12-26",
	}
}

func TestService_CreateFromLeaveDecision(t *testing.T) {
	ctx := context.Background()

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)
		evt := decidedEvent("Approved")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				assert.Equal(t, evt.LeaveID+":Approved", n.DedupeKey)
				assert.Equal(t, evt.EmployeeID, n.EmployeeID.String())
				assert.Equal(t, "Leave LV-000007 Approved", n.Title)
				assert.Equal(t, "Your leave for 2026-12-24 to 2026-12-26 was approved by Kalani Jibon.", n.Body)
				return true, nil
			})

		assert.NoError(t, svc.CreateFromLeaveDecision(ctx, evt))
	})

	t.Run("rejected carries the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)
		evt := decidedEvent("Rejected")
		evt.RejectionReason = "Peak season"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				assert.Contains(t, n.Body, "rejected by Kalani Jibon: Peak season")
				return true, nil
			})

		assert.NoError(t, svc.CreateFromLeaveDecision(ctx, evt))
	})

	t.Run("redelivery is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.NoError(t, svc.CreateFromLeaveDecision(ctx, decidedEvent("Cancelled")))
	})

	t.Run("malformed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notification.NewService(mock.NewMockRepository(ctrl))
		evt := decidedEvent("Approved")
		evt.LeaveID = "nope"

		assert.Error(t, svc.CreateFromLeaveDecision(ctx, evt))
	})

	t.Run("store error is returned for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		assert.Error(t, svc.CreateFromLeaveDecision(ctx, decidedEvent("Approved")))
	})
}

func TestService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	actor := session.Actor{UserID: "u1", CompanyID: uuid.New().String(), EmployeeID: uuid.New().String()}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().ListForEmployee(gomock.Any(), actor.CompanyID, actor.EmployeeID, true).
			Return([]notification.Notification{{ID: uuid.New(), Title: "Leave LV-000007 Approved"}}, nil)

		got, err := svc.ListForEmployee(ctx, actor, true)

		assert.NoError(t, err)
		if assert.Len(t, got, 1) {
			assert.Nil(t, got[0].ReadAt)
			assert.Equal(t, "Leave LV-000007 Approved", got[0].Title)
		}
	})

	t.Run("actor without employee profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notification.NewService(mock.NewMockRepository(ctrl))

		_, err := svc.ListForEmployee(ctx, session.Actor{UserID: "u1", CompanyID: actor.CompanyID}, false)

		assert.ErrorIs(t, err, notificationerrors.ErrNoEmployeeProfile)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	actor := session.Actor{UserID: "u1", CompanyID: uuid.New().String(), EmployeeID: uuid.New().String()}
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().MarkRead(gomock.Any(), actor.CompanyID, actor.EmployeeID, id, gomock.Any()).Return(nil)

		assert.NoError(t, svc.MarkRead(ctx, actor, id))
	})

	t.Run("someone else's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().MarkRead(gomock.Any(), actor.CompanyID, actor.EmployeeID, id, gomock.Any()).
			Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.MarkRead(ctx, actor, id), notificationerrors.ErrNotificationNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notification.NewService(mock.NewMockRepository(ctrl))

		assert.ErrorIs(t, svc.MarkRead(ctx, actor, "abc"), notificationerrors.ErrInvalidNotificationID)
	})
}
