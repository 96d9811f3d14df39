package request

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/notification-service/internal/mocks/service/request"
	"github.com/aliskhannn/notification-service/internal/model"
	requestrepo "github.com/aliskhannn/notification-service/internal/repository/request"
)

func TestService_CreateRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	svc := NewService(repoMock, nil)

	var stored model.Request
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(model.Request{})).
		Do(func(_ context.Context, req model.Request) {
			stored = req
		}).
		Return(nil)

	id, err := svc.CreateRequest(context.Background(), "user@example.com", "Hello", model.ChannelEmail)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, model.StatusQueued, stored.Status)
	assert.Equal(t, "user@example.com", stored.To)
	assert.Equal(t, model.ChannelEmail, stored.Channel)
}

func TestService_CreateRequest_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	svc := NewService(repoMock, nil)

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(10)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		id, err := svc.CreateRequest(context.Background(), "user@example.com", "Hello", model.ChannelSMS)
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestService_GetRequestStatusByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	svc := NewService(repoMock, nil)

	id := uuid.New()
	repoMock.EXPECT().
		Get(gomock.Any(), id).
		Return(model.Request{ID: id, Status: model.StatusSent}, nil)

	status, err := svc.GetRequestStatusByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetRequestStatusByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	svc := NewService(repoMock, nil)

	id := uuid.New()
	repoMock.EXPECT().
		Get(gomock.Any(), id).
		Return(model.Request{}, requestrepo.ErrRequestNotFound)

	_, err := svc.GetRequestStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, requestrepo.ErrRequestNotFound)
}

func TestService_Process_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	svc := NewService(repoMock, dispatcherMock)

	id := uuid.New()
	queued := model.Request{ID: id, To: "a@b.com", Message: "hi", Channel: model.ChannelEmail, Status: model.StatusQueued}

	repoMock.EXPECT().Get(gomock.Any(), id).Return(queued, nil)
	repoMock.EXPECT().
		CompareAndTransition(gomock.Any(), id, model.StatusQueued, model.StatusProcessing).
		Return(true, nil)
	dispatcherMock.EXPECT().
		Enqueue(gomock.AssignableToTypeOf(model.Request{})).
		Do(func(req model.Request) {
			assert.Equal(t, id, req.ID)
			assert.Equal(t, model.StatusProcessing, req.Status)
		})

	result, err := svc.Process(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ResultAccepted, result)
}

func TestService_Process_AlreadyHandled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	svc := NewService(repoMock, dispatcherMock)

	id := uuid.New()
	processing := model.Request{ID: id, Status: model.StatusProcessing}

	// Losing the transition must not enqueue a second dispatch.
	repoMock.EXPECT().Get(gomock.Any(), id).Return(processing, nil)
	repoMock.EXPECT().
		CompareAndTransition(gomock.Any(), id, model.StatusQueued, model.StatusProcessing).
		Return(false, nil)

	result, err := svc.Process(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ResultAlreadyHandled, result)
}

func TestService_Process_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockrequestRepo(ctrl)
	svc := NewService(repoMock, nil)

	id := uuid.New()
	repoMock.EXPECT().Get(gomock.Any(), id).Return(model.Request{}, requestrepo.ErrRequestNotFound)

	_, err := svc.Process(context.Background(), id)
	assert.ErrorIs(t, err, requestrepo.ErrRequestNotFound)
}

// countingDispatcher records enqueued requests without running deliveries.
type countingDispatcher struct {
	enqueued int32
}

func (d *countingDispatcher) Enqueue(model.Request) {
	atomic.AddInt32(&d.enqueued, 1)
}

func TestService_Process_ConcurrentTriggersSingleDispatch(t *testing.T) {
	repo := requestrepo.NewRepository()
	dispatcher := &countingDispatcher{}
	svc := NewService(repo, dispatcher)

	id, err := svc.CreateRequest(context.Background(), "a@b.com", "hi", model.ChannelEmail)
	require.NoError(t, err)

	const callers = 16

	var wg sync.WaitGroup
	var accepted int32

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()

			result, err := svc.Process(context.Background(), id)
			assert.NoError(t, err)

			if result == ResultAccepted {
				atomic.AddInt32(&accepted, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted)
	assert.Equal(t, int32(1), atomic.LoadInt32(&dispatcher.enqueued))

	status, err := svc.GetRequestStatusByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, status)
}
