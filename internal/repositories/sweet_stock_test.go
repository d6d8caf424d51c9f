package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetshop/backend/internal/models"
)

// Concurrent purchases of the last unit must serialize inside the database:
// exactly one decrement wins, everyone else sees sql.ErrNoRows, and the stock
// never goes negative.
func TestSweetWriteRepository_DecrementQuantity_ConcurrentLastUnit(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewSweetWriteRepository(db)
	ctx := context.Background()

	const sweetID = "33333333-3333-3333-3333-333333333333"
	require.NoError(t, repo.Save(ctx, models.SweetDB{
		ID:       sweetID,
		Name:     "Last Ladoo",
		Category: "Traditional",
		Price:    25,
		Quantity: 1,
	}))

	const workers = 8

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.DecrementQuantity(ctx, sweetID)
			results <- err
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	var successes, misses int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, sql.ErrNoRows):
			misses++
		default:
			t.Fatalf("unexpected decrement error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, misses)

	var quantity int
	require.NoError(t, db.Get(&quantity, "SELECT quantity FROM sweets WHERE id = $1", sweetID))
	assert.Equal(t, 0, quantity)
}

// Interleaved purchases and restocks against the same row must not lose
// deltas: the final quantity is exactly the seeded stock plus all increments
// minus all successful decrements.
func TestSweetWriteRepository_ConcurrentPurchaseAndRestock_NoLostUpdates(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewSweetWriteRepository(db)
	ctx := context.Background()

	const sweetID = "44444444-4444-4444-4444-444444444444"
	const seeded = 100
	require.NoError(t, repo.Save(ctx, models.SweetDB{
		ID:       sweetID,
		Name:     "Barfi",
		Category: "Traditional",
		Price:    30,
		Quantity: seeded,
	}))

	const purchases = 50
	const restocks = 10
	const restockAmount = 5

	var wg sync.WaitGroup
	start := make(chan struct{})
	decErrs := make(chan error, purchases)
	incErrs := make(chan error, restocks)

	for i := 0; i < purchases; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.DecrementQuantity(ctx, sweetID)
			decErrs <- err
		}()
	}
	for i := 0; i < restocks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.IncrementQuantity(ctx, sweetID, restockAmount)
			incErrs <- err
		}()
	}

	close(start)
	wg.Wait()
	close(decErrs)
	close(incErrs)

	// Stock starts well above the number of purchases, so no decrement can
	// hit the zero guard.
	for err := range decErrs {
		assert.NoError(t, err)
	}
	for err := range incErrs {
		assert.NoError(t, err)
	}

	var quantity int
	require.NoError(t, db.Get(&quantity, "SELECT quantity FROM sweets WHERE id = $1", sweetID))
	assert.Equal(t, seeded-purchases+restocks*restockAmount, quantity)
}
