package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Успешная отправка: ключ — id, тело — JSON WorkUnit, ровно один вызов Send.
func TestDispatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)
	wu := domain.WorkUnit{ID: "wu-1", Definition: "resize images"}

	var sent []byte
	mockBroker.EXPECT().
		Send(gomock.Any(), []byte("wu-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			sent = value
			return nil
		}).
		Times(1)

	uc := New(mockBroker, newTestLogger())

	ok := uc.Dispatch(context.Background(), wu)

	assert.True(t, ok)
	var got domain.WorkUnit
	require.NoError(t, json.Unmarshal(sent, &got))
	assert.Equal(t, wu, got)
	assert.JSONEq(t, `{"id":"wu-1","definition":"resize images"}`, string(sent))
}

// Ошибка брокера: false, паники и повторов нет.
func TestDispatch_BrokerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)
	mockBroker.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.Join(domain.ErrPublishFailed, errors.New("leader not available"))).
		Times(1)

	uc := New(mockBroker, newTestLogger())

	ok := uc.Dispatch(context.Background(), domain.WorkUnit{ID: "wu-2", Definition: "x"})

	assert.False(t, ok)
}

// Отменённый контекст доходит до брокера, результат — false.
func TestDispatch_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)
	mockBroker.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ []byte) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := New(mockBroker, nil)

	assert.False(t, uc.Dispatch(ctx, domain.WorkUnit{ID: "wu-3", Definition: "x"}))
}
