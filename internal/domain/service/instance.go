package service

import (
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
)

type Instance struct {
	Task     *taskService
	Reminder *reminder
}

func NewInstance(dm contract.DataManager, channel contract.ChannelClient) *Instance {
	return &Instance{
		Task:     newTaskService(dm),
		Reminder: newReminder(dm, channel, newDestination(dm, channel)),
	}
}
