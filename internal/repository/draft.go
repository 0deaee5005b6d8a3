package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/service"
)

type DraftRepository struct {
	db *pgxpool.Pool
}

func NewDraftRepository(db *pgxpool.Pool) service.DraftRepository {
	return &DraftRepository{db: db}
}

const selectDraft = `
	SELECT
		id,
		address,
		reference_point,
		category,
		subcategory,
		priority,
		description,
		vehicle_code,
		ST_Y(location::geometry) AS latitude,
		ST_X(location::geometry) AS longitude,
		photos,
		signature_image,
		created_at,
		updated_at
	FROM drafts
`

// Create сохраняет новый черновик
func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	photos, err := marshalPhotos(draft.Photos)
	if err != nil {
		return err
	}
	lat, lon := coordinateArgs(draft.Coordinates)

	query := `
		INSERT INTO drafts (id, address, reference_point, category, subcategory, priority,
			description, vehicle_code, location, photos, signature_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			CASE WHEN $9::float8 IS NULL THEN NULL
				ELSE ST_SetSRID(ST_MakePoint($10::float8, $9::float8), 4326)::geography END,
			$11, $12)
		RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		draft.ID,
		draft.Address,
		draft.ReferencePoint,
		draft.Category,
		draft.Subcategory,
		draft.Priority,
		draft.Description,
		draft.VehicleCode,
		lat,
		lon,
		photos,
		draft.SignatureImage,
	).Scan(&draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}
	return nil
}

// GetByID возвращает черновик по UUID
func (r *DraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	var (
		draft    models.Draft
		lat, lon *float64
		photos   []byte
	)
	err := r.db.QueryRow(ctx, selectDraft+" WHERE id = $1;", id).Scan(
		&draft.ID,
		&draft.Address,
		&draft.ReferencePoint,
		&draft.Category,
		&draft.Subcategory,
		&draft.Priority,
		&draft.Description,
		&draft.VehicleCode,
		&lat,
		&lon,
		&photos,
		&draft.SignatureImage,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("draft %s: %w", id, service.ErrDraftNotFound)
		}
		return nil, fmt.Errorf("failed to get draft by id: %w", err)
	}

	if lat != nil && lon != nil {
		draft.Coordinates = &models.Coordinates{Latitude: *lat, Longitude: *lon}
	}
	if err := json.Unmarshal(photos, &draft.Photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft photos: %w", err)
	}
	return &draft, nil
}

// Update перезаписывает черновик целиком
func (r *DraftRepository) Update(ctx context.Context, draft *models.Draft) error {
	photos, err := marshalPhotos(draft.Photos)
	if err != nil {
		return err
	}
	lat, lon := coordinateArgs(draft.Coordinates)

	query := `
		UPDATE drafts SET
			address = $1,
			reference_point = $2,
			category = $3,
			subcategory = $4,
			priority = $5,
			description = $6,
			vehicle_code = $7,
			location = CASE WHEN $8::float8 IS NULL THEN NULL
				ELSE ST_SetSRID(ST_MakePoint($9::float8, $8::float8), 4326)::geography END,
			photos = $10,
			signature_image = $11,
			updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		draft.Address,
		draft.ReferencePoint,
		draft.Category,
		draft.Subcategory,
		draft.Priority,
		draft.Description,
		draft.VehicleCode,
		lat,
		lon,
		photos,
		draft.SignatureImage,
		draft.ID,
	).Scan(&draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("draft %s: %w", draft.ID, service.ErrDraftNotFound)
		}
		return fmt.Errorf("failed to update draft: %w", err)
	}
	return nil
}

// Delete удаляет черновик
func (r *DraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drafts WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", id, service.ErrDraftNotFound)
	}
	return nil
}

func marshalPhotos(photos []models.Photo) ([]byte, error) {
	if photos == nil {
		photos = []models.Photo{}
	}
	data, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft photos: %w", err)
	}
	return data, nil
}

func coordinateArgs(c *models.Coordinates) (lat, lon *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Latitude, &c.Longitude
}
