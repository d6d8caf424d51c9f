package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

var (
	// ErrSweetNotFound is returned when the referenced sweet does not exist.
	ErrSweetNotFound = errors.New("sweet not found")
	// ErrOutOfStock is returned when a purchase finds no stock left.
	ErrOutOfStock = errors.New("sweet out of stock")
	// ErrInvalidQuantity is returned when a restock amount is not a positive integer.
	ErrInvalidQuantity = errors.New("valid quantity required")
)

// SweetReader defines read operations for sweets.
type SweetReader interface {
	List(ctx context.Context) ([]models.SweetDB, error)
	Search(ctx context.Context, filter models.SweetFilter) ([]models.SweetDB, error)
	GetByID(ctx context.Context, id string) (*models.SweetDB, error)
}

// SweetWriter defines write operations for sweets. DecrementQuantity and
// IncrementQuantity must be single atomic conditional updates.
type SweetWriter interface {
	Save(ctx context.Context, sweet models.SweetDB) error
	Update(ctx context.Context, sweet models.SweetDB) (*models.SweetDB, error)
	Delete(ctx context.Context, id string) (bool, error)
	DecrementQuantity(ctx context.Context, id string) (int, error)
	IncrementQuantity(ctx context.Context, id string, amount int) (int, error)
}

// CatalogCache caches the full catalog listing.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.SweetDB, error)
	Set(ctx context.Context, sweets []models.SweetDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SweetService implements the inventory operations and publishes stock movements.
type SweetService struct {
	readRepo    SweetReader
	writeRepo   SweetWriter
	cache       CatalogCache
	kafkaWriter KafkaWriter
}

// NewSweetService creates a new SweetService.
func NewSweetService(
	readRepo SweetReader,
	writeRepo SweetWriter,
	cache CatalogCache,
	kafkaWriter KafkaWriter,
) *SweetService {
	return &SweetService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishMovement publishes a stock movement event to Kafka.
func (s *SweetService) publishMovement(ctx context.Context, movement models.StockMovement) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "movement_id", movement.MovementID)
		return
	}

	data, err := json.Marshal(movement)
	if err != nil {
		logger.Log.Errorw("failed to marshal stock movement", "movement_id", movement.MovementID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(movement.MovementID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish stock movement", "movement_id", movement.MovementID, "error", err)
	} else {
		logger.Log.Infow("stock movement published", "movement_id", movement.MovementID, "operation", movement.Operation)
	}
}

// invalidateCatalog drops the cached listing after a write. A cache failure is
// logged and swallowed; the database remains the source of truth.
func (s *SweetService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate catalog cache", "error", err)
	}
}

// Create stores a new sweet and returns it with its generated id.
func (s *SweetService) Create(ctx context.Context, name, category string, price float64, quantity int) (*models.SweetDB, error) {
	sweet := models.SweetDB{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}

	if err := s.writeRepo.Save(ctx, sweet); err != nil {
		logger.Log.Errorw("failed to save sweet", "name", name, "error", err)
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return &sweet, nil
}

// List returns the full catalog ordered by name, served from the cache when
// possible and re-read from storage otherwise.
func (s *SweetService) List(ctx context.Context) ([]models.SweetDB, error) {
	if s.cache != nil {
		if sweets, err := s.cache.Get(ctx); err == nil {
			return sweets, nil
		}
	}

	sweets, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list sweets", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sweets); err != nil {
			logger.Log.Errorw("failed to cache catalog", "error", err)
		}
	}

	return sweets, nil
}

// Search returns sweets matching the filter, always from storage.
func (s *SweetService) Search(ctx context.Context, filter models.SweetFilter) ([]models.SweetDB, error) {
	sweets, err := s.readRepo.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search sweets", "error", err)
		return nil, err
	}
	return sweets, nil
}

// Update replaces all mutable fields of an existing sweet.
func (s *SweetService) Update(ctx context.Context, id, name, category string, price float64, quantity int) (*models.SweetDB, error) {
	sweet := models.SweetDB{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}

	updated, err := s.writeRepo.Update(ctx, sweet)
	if err != nil {
		logger.Log.Errorw("failed to update sweet", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrSweetNotFound
	}

	s.invalidateCatalog(ctx)
	return updated, nil
}

// Delete removes a sweet permanently.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	deleted, err := s.writeRepo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete sweet", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrSweetNotFound
	}

	s.invalidateCatalog(ctx)
	return nil
}

// Purchase atomically takes one unit of stock and returns the remaining
// quantity. Under concurrent purchases of the last unit exactly one caller
// succeeds; the rest observe ErrOutOfStock.
func (s *SweetService) Purchase(ctx context.Context, id, username string) (int, error) {
	quantity, err := s.writeRepo.DecrementQuantity(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		// The guarded update matched nothing: either the sweet is gone
		// or its stock is already zero.
		sweet, getErr := s.readRepo.GetByID(ctx, id)
		if getErr != nil {
			logger.Log.Errorw("failed to resolve purchase failure", "id", id, "error", getErr)
			return 0, getErr
		}
		if sweet == nil {
			return 0, ErrSweetNotFound
		}
		return 0, ErrOutOfStock
	}
	if err != nil {
		logger.Log.Errorw("failed to purchase sweet", "id", id, "error", err)
		return 0, err
	}

	s.invalidateCatalog(ctx)

	s.publishMovement(ctx, models.StockMovement{
		MovementID: uuid.NewString(),
		SweetID:    id,
		Operation:  models.OperationPurchase,
		Delta:      -1,
		Quantity:   quantity,
		Username:   username,
		Timestamp:  time.Now().Unix(),
	})

	return quantity, nil
}

// Restock atomically adds stock and returns the new quantity.
func (s *SweetService) Restock(ctx context.Context, id string, amount int, username string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidQuantity
	}

	quantity, err := s.writeRepo.IncrementQuantity(ctx, id, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSweetNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to restock sweet", "id", id, "amount", amount, "error", err)
		return 0, err
	}

	s.invalidateCatalog(ctx)

	s.publishMovement(ctx, models.StockMovement{
		MovementID: uuid.NewString(),
		SweetID:    id,
		Operation:  models.OperationRestock,
		Delta:      amount,
		Quantity:   quantity,
		Username:   username,
		Timestamp:  time.Now().Unix(),
	})

	return quantity, nil
}
