package mocknotify

import (
	"context"

	"github.com/jandkbailey21/FDG-Discord-Bot/notify"
	"github.com/stretchr/testify/mock"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, alert notify.Alert) (notify.Result, error) {
	args := m.Called(ctx, alert)
	return args.Get(0).(notify.Result), args.Error(1)
}
