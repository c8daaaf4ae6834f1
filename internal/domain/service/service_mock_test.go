package service

import (
	"context"
	"testing"

	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/task-reminder-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockTaskRepo      *mocks.MockTaskRepo
	mockSettingRepo   *mocks.MockSettingRepo
	mockChannelClient *mocks.MockChannelClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	taskRepo := mocks.NewMockTaskRepo(ctrl)
	dm.EXPECT().Task().Return(taskRepo).AnyTimes()

	settingRepo := mocks.NewMockSettingRepo(ctrl)
	dm.EXPECT().Setting().Return(settingRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockTaskRepo:      taskRepo,
		mockSettingRepo:   settingRepo,
		mockChannelClient: mocks.NewMockChannelClient(ctrl),
	}

	return
}

// expectTransaction runs the transaction body against the same mocks.
func (m allMocks) expectTransaction() *gomock.Call {
	return m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
