package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/database/postgres"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestPostgres(t *testing.T) OrderRepository {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := postgres.Connect(fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port()), "testdb")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.RunMigrations(db))
	// second run is a no-op
	require.NoError(t, postgres.RunMigrations(db))

	return CreateOrderRepository(db)
}

func TestOrderRepository(t *testing.T) {
	repo := setupTestPostgres(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	order := domain.Order{
		ReferenceNumber: "01JC0000000000000000000000",
		Email:           "jane@example.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		Contact:         "0812345678",
		Address:         "Unit 4",
		Street:          "Main St",
		City:            "Springfield",
		Postal:          "12345",
		PaymentMethod:   "card",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := repo.AddOrder(ctx, order)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetOrderByReference(ctx, order.ReferenceNumber)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Springfield", got.City)
	assert.True(t, now.Equal(got.CreatedAt))

	_, err = repo.GetOrderByReference(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
