package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

// SweetReadRepository handles sweet read operations
type SweetReadRepository struct {
	db *sqlx.DB
}

func NewSweetReadRepository(db *sqlx.DB) *SweetReadRepository {
	return &SweetReadRepository{db: db}
}

// List returns all sweets ordered by name ascending.
func (r *SweetReadRepository) List(ctx context.Context) ([]models.SweetDB, error) {
	const query = `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets
		ORDER BY name ASC
	`

	sweets := []models.SweetDB{}
	err := r.db.SelectContext(ctx, &sweets, query)

	logger.Log.Debugw("sweet list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(sweets),
		"error", err,
	)

	return sweets, err
}

// Search returns sweets matching every set filter field, ordered by name ascending.
func (r *SweetReadRepository) Search(ctx context.Context, filter models.SweetFilter) ([]models.SweetDB, error) {
	query := `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets
	`

	var conditions []string
	var args []any

	if filter.Name != nil {
		args = append(args, *filter.Name)
		conditions = append(conditions, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	sweets := []models.SweetDB{}
	err := r.db.SelectContext(ctx, &sweets, query, args...)

	logger.Log.Debugw("sweet search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(sweets),
		"error", err,
	)

	return sweets, err
}

// GetByID returns the sweet with the given id, or nil if absent.
func (r *SweetReadRepository) GetByID(ctx context.Context, id string) (*models.SweetDB, error) {
	const query = `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets
		WHERE id = $1
		LIMIT 1
	`

	var sweet models.SweetDB
	err := r.db.GetContext(ctx, &sweet, query, id)

	logger.Log.Debugw("sweet read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sweet, nil
}

// SweetWriteRepository handles sweet write operations
type SweetWriteRepository struct {
	db *sqlx.DB
}

func NewSweetWriteRepository(db *sqlx.DB) *SweetWriteRepository {
	return &SweetWriteRepository{db: db}
}

// Save inserts a new sweet row.
func (r *SweetWriteRepository) Save(ctx context.Context, sweet models.SweetDB) error {
	query := `
		INSERT INTO sweets (id, name, category, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("sweet write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update replaces all mutable fields of the sweet and returns the updated row,
// or nil if no row with the given id exists.
func (r *SweetWriteRepository) Update(ctx context.Context, sweet models.SweetDB) (*models.SweetDB, error) {
	query := `
		UPDATE sweets
		SET name = $2, category = $3, price = $4, quantity = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, category, price, quantity, created_at, updated_at
	`
	args := []any{sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity}

	var updated models.SweetDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Debugw("sweet update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the sweet row. Returns false when no row matched.
func (r *SweetWriteRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM sweets WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("sweet delete",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DecrementQuantity atomically takes one unit of stock. The guard predicate
// makes concurrent purchases of the last unit serialize inside the database:
// the statement matches no row when the sweet is absent or already at zero,
// in which case sql.ErrNoRows is returned.
func (r *SweetWriteRepository) DecrementQuantity(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE sweets
		SET quantity = quantity - 1, updated_at = NOW()
		WHERE id = $1 AND quantity > 0
		RETURNING quantity
	`

	var quantity int
	err := r.db.GetContext(ctx, &quantity, query, id)

	logger.Log.Debugw("sweet decrement",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", quantity,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// IncrementQuantity atomically adds stock and returns the new quantity.
// Returns sql.ErrNoRows when the sweet does not exist.
func (r *SweetWriteRepository) IncrementQuantity(ctx context.Context, id string, amount int) (int, error) {
	query := `
		UPDATE sweets
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING quantity
	`

	var quantity int
	err := r.db.GetContext(ctx, &quantity, query, id, amount)

	logger.Log.Debugw("sweet increment",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, amount},
		"result", quantity,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return quantity, nil
}
