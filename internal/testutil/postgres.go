// Package testutil provides database fixtures for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// SetupDB returns a migrated connection. TEST_DB_DSN points at an
// external database; without it a throwaway postgres container is
// started. Short mode skips either way.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		ctx := context.Background()

		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "bugtracking",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
		}

		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		host, err := pg.Host(ctx)
		if err != nil {
			t.Fatalf("container host: %v", err)
		}
		port, err := pg.MappedPort(ctx, "5432")
		if err != nil {
			t.Fatalf("container port: %v", err)
		}
		dsn = fmt.Sprintf("host=%s port=%s user=test password=test dbname=bugtracking sslmode=disable", host, port.Port())
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&team.Team{},
		&team.Membership{},
		&team.Invitation{},
		&project.Project{},
		&project.Membership{},
		&ticket.Ticket{},
		&ticket.Comment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
