package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
	log "github.com/sirupsen/logrus"
)

// CycleReport summarizes one reminder cycle.
type CycleReport struct {
	Destination   int64
	Resolved      bool
	Evaluated     int
	ParseFailures int
	Sent          int
	SendFailures  int
	Flagged       int
	Committed     bool
}

type reminder struct {
	dm          contract.DataManager
	channel     contract.ChannelClient
	destination contract.DestinationResolver
	now         func() time.Time
}

func newReminder(dm contract.DataManager, channel contract.ChannelClient, destination contract.DestinationResolver) *reminder {
	return &reminder{
		dm:          dm,
		channel:     channel,
		destination: destination,
		now:         time.Now,
	}
}

// RunCycle evaluates every pending task against both reminder windows and
// persists the flags it set in a single transaction. Failures are logged and
// confined to the task or the cycle they happened in.
func (s *reminder) RunCycle(ctx context.Context) CycleReport {
	var report CycleReport

	chatID, ok := s.destination.Resolve(ctx)
	if !ok {
		log.Debug("no destination chat, skipping reminder cycle")
		return report
	}
	report.Destination = chatID
	report.Resolved = true

	tasks, err := s.dm.Task().GetPendingWithDueTime(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load pending tasks")
		return report
	}

	now := s.now()
	var flagged []*entity.Task
	for _, task := range tasks {
		report.Evaluated++
		if s.evaluate(ctx, chatID, task, now, &report) {
			flagged = append(flagged, task)
		}
	}

	report.Flagged = len(flagged)
	if len(flagged) == 0 {
		return report
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, task := range flagged {
			if err := tx.Task().SetNotified(ctx, task.ID, task.Notified60, task.Notified5); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("tasks", len(flagged)).Error("failed to persist reminder flags")
		return report
	}

	report.Committed = true
	return report
}

// evaluate sends whichever reminders are due for task and reports whether a
// flag changed. The flag is set even when the send fails: delivery is best
// effort and a reminder is never repeated.
func (s *reminder) evaluate(ctx context.Context, chatID int64, task *entity.Task, now time.Time, report *CycleReport) bool {
	if !task.HasDueTime() {
		return false
	}

	due, ok, err := domain.ParseDueTime(*task.DueTime, now.Location())
	if err != nil {
		report.ParseFailures++
		log.WithError(err).WithField("task_id", task.ID).Warn("skipping task with unparseable due time")
		return false
	}
	if !ok {
		return false
	}

	delta := domain.MinutesUntil(due, now)
	logger := log.WithFields(log.Fields{
		"task_id":       task.ID,
		"delta_minutes": delta,
	})

	changed := false
	if domain.InReminderWindow(delta, domain.FirstReminderMinutes) && !task.Notified60 {
		s.send(ctx, chatID, fmt.Sprintf(domain.FirstReminderMessage, task.Title), report, logger)
		task.Notified60 = true
		changed = true
	}
	if domain.InReminderWindow(delta, domain.FinalReminderMinutes) && !task.Notified5 {
		s.send(ctx, chatID, fmt.Sprintf(domain.FinalReminderMessage, task.Title), report, logger)
		task.Notified5 = true
		changed = true
	}

	return changed
}

func (s *reminder) send(ctx context.Context, chatID int64, text string, report *CycleReport, logger *log.Entry) {
	if err := s.channel.SendMessage(ctx, chatID, text); err != nil {
		report.SendFailures++
		logger.WithError(err).Warn("failed to send reminder")
		return
	}
	report.Sent++
	logger.Info("reminder sent")
}

// AnnounceStartup sends a one-off message once the server is up. It is not
// retried when no destination is known yet.
func (s *reminder) AnnounceStartup(ctx context.Context) {
	chatID, ok := s.destination.Resolve(ctx)
	if !ok {
		log.Info("no destination chat yet, skipping startup announcement")
		return
	}

	if err := s.channel.SendMessage(ctx, chatID, domain.StartupMessage); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Warn("failed to send startup announcement")
	}
}
