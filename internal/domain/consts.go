package domain

import "time"

// Reminder thresholds, in minutes before a task's due time. Each reminder may
// fire while the remaining whole minutes are within ReminderWindowMinutes of
// its threshold, so a poll period of one minute never skips past it.
const (
	FirstReminderMinutes  = 60
	FinalReminderMinutes  = 5
	ReminderWindowMinutes = 1
)

const (
	// DefaultPollInterval is the pause between two reminder cycles.
	DefaultPollInterval = 60 * time.Second
	// DefaultChannelTimeout bounds every outbound messaging call.
	DefaultChannelTimeout = 10 * time.Second
)

// SettingChatID is the settings key holding the destination chat id. The
// service is single-tenant: every reminder goes to this one chat.
const SettingChatID = "chat_id"

const (
	StartupMessage       = "Server started"
	FirstReminderMessage = "Task due in 1 hour: %s"
	FinalReminderMessage = "Task due in 5 minutes: %s"
)

// Task listing defaults and limits.
const (
	DefaultTaskLimit = 100
	MaxTaskLimit     = 500
)

// Sort keys accepted by the task listing.
const (
	SortByCreated = "created"
	SortByTitle   = "title"
	SortByDue     = "due"
	SortByID      = "id"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)
