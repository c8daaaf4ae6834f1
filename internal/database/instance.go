package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	taskRepo    contract.TaskRepo
	settingRepo contract.SettingRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.taskRepo = newTaskRepo(i.db.conn)
	i.settingRepo = newSettingRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db *DB, conn dbConn) *instance {
	return &instance{
		db:          db,
		taskRepo:    newTaskRepo(conn),
		settingRepo: newSettingRepo(conn),
	}
}

// Task returns the task repository
func (i *instance) Task() contract.TaskRepo {
	return i.taskRepo
}

// Setting returns the settings repository
func (i *instance) Setting() contract.SettingRepo {
	return i.settingRepo
}

// WithTransaction executes a function within a database transaction.
// All writes made through the DataManager passed to fn are committed together.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(i.db, tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
