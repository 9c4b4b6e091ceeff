package repository

import (
	"errors"
	"testing"

	"github.com/quickhire/quickhire-api/internal/domain/application"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepos(t *testing.T, name string) *Repos {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := gormDB.AutoMigrate(&job.Job{}, &application.Application{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewWithDB(gormDB)
}

func TestTransactionCommits(t *testing.T) {
	repos := newTestRepos(t, "repos_tx_commit")

	posted := &job.Job{Title: "t", Company: "c", Location: "l", Type: "Full Time", Description: "d"}
	err := repos.Transaction(func(tx *Repos) error {
		if err := tx.Job.Create(posted); err != nil {
			return err
		}
		return tx.Application.Create(&application.Application{
			JobID: posted.ID, Name: "Ann", Email: "ann@example.com",
			ResumeLink: "https://r.example/ann", Status: application.StatusPending,
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apps, err := repos.Application.FindByJobID(posted.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
}

func TestTransactionRollsBack(t *testing.T) {
	repos := newTestRepos(t, "repos_tx_rollback")

	boom := errors.New("boom")
	err := repos.Transaction(func(tx *Repos) error {
		if err := tx.Job.Create(&job.Job{Title: "t", Company: "c", Location: "l",
			Type: "Full Time", Description: "d"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	jobs, err := repos.Job.FindAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected rollback to discard the job, got %d rows", len(jobs))
	}
}

func TestTransactionWithoutHandle(t *testing.T) {
	repos := &Repos{}

	ran := false
	if err := repos.Transaction(func(tx *Repos) error {
		ran = true
		if tx != repos {
			t.Fatal("expected the same repos without a db handle")
		}
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("fn did not run")
	}
}
