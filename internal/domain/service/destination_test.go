package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/task-reminder-bot/internal/database"
	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func messageUpdate(id int, chatID int64) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		Message:  &tgbotapi.Message{MessageID: id, Chat: &tgbotapi.Chat{ID: chatID}},
	}
}

func Test_destination_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		buildMock  func(channel *mocks.MockChannelClient)
		wantChatID int64
		wantOK     bool
		wantStored string
	}{
		{
			name:   "Should use stored chat id without network calls",
			stored: "777",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Times(0)
			},
			wantChatID: 777,
			wantOK:     true,
			wantStored: "777",
		},
		{
			name: "Should discover and persist the first chat",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{
					{UpdateID: 1},
					{UpdateID: 2, Message: &tgbotapi.Message{MessageID: 2}},
					messageUpdate(3, 555),
					messageUpdate(4, 666),
				}, nil).Times(1)
			},
			wantChatID: 555,
			wantOK:     true,
			wantStored: "555",
		},
		{
			name: "Should discover from edited messages",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{
					{UpdateID: 1, EditedMessage: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: -1001}}},
				}, nil).Times(1)
			},
			wantChatID: -1001,
			wantOK:     true,
			wantStored: "-1001",
		},
		{
			name:   "Should replace a stale non-numeric value",
			stored: "oops",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{messageUpdate(1, 42)}, nil).Times(1)
			},
			wantChatID: 42,
			wantOK:     true,
			wantStored: "42",
		},
		{
			name: "Should return none when there is no activity",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{}, nil).Times(1)
			},
		},
		{
			name: "Should return none on transport failure",
			buildMock: func(channel *mocks.MockChannelClient) {
				channel.EXPECT().GetUpdates(gomock.Any()).Return(nil, &tgbotapi.Error{Code: 502, Message: "Bad Gateway"}).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := database.SetupTestDB(t)
			defer database.CleanupTestDB(t, db)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dm := database.NewInstance(db)
			ctx := context.Background()
			if tt.stored != "" {
				require.NoError(t, dm.Setting().Upsert(ctx, domain.SettingChatID, tt.stored))
			}

			channel := mocks.NewMockChannelClient(ctrl)
			tt.buildMock(channel)

			chatID, ok := newDestination(dm, channel).Resolve(ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantChatID, chatID)

			stored, err := dm.Setting().Get(ctx, domain.SettingChatID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStored, stored)
		})
	}
}

func Test_destination_CachesAfterDiscovery(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dm := database.NewInstance(db)
	ctx := context.Background()

	channel := mocks.NewMockChannelClient(ctrl)
	// discovery fails once, succeeds once, and is never needed again
	gomock.InOrder(
		channel.EXPECT().GetUpdates(gomock.Any()).Return(nil, errors.New("i/o timeout")).Times(1),
		channel.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{messageUpdate(1, 900)}, nil).Times(1),
	)

	d := newDestination(dm, channel)

	_, ok := d.Resolve(ctx)
	assert.False(t, ok)

	for i := 0; i < 5; i++ {
		chatID, ok := d.Resolve(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(900), chatID)
	}
}

func Test_destination_SettingFailures(t *testing.T) {
	t.Run("Should return none when settings cannot be read", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingChatID).Return("", errors.New("database is locked")).Times(1)

		_, ok := newDestination(m.mockDataManager, m.mockChannelClient).Resolve(context.Background())
		assert.False(t, ok)
	})

	t.Run("Should return none when the discovered chat cannot be saved", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingChatID).Return("", nil).Times(1)
		m.mockChannelClient.EXPECT().GetUpdates(gomock.Any()).Return([]tgbotapi.Update{messageUpdate(1, 5)}, nil).Times(1)
		m.mockSettingRepo.EXPECT().Upsert(gomock.Any(), domain.SettingChatID, "5").Return(errors.New("readonly database")).Times(1)

		_, ok := newDestination(m.mockDataManager, m.mockChannelClient).Resolve(context.Background())
		assert.False(t, ok)
	})
}
