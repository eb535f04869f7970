package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/learning"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration returns a migrated gorm handle against
// either TEST_DB_DSN or a disposable postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db := openAndMigrate(dsn)
		return db, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "femfund",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/femfund?sslmode=disable", host, port.Port())

	// retry until the container accepts connections
	var raw *sql.DB
	for i := 0; i < 10; i++ {
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			err = raw.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	_ = raw.Close()

	db := openAndMigrate(dsn)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return db, cleanup
}

func openAndMigrate(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&funding.Option{},
		&application.Application{},
		&application.Document{},
		&learning.Resource{},
		&learning.Progress{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}
