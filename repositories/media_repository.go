package repositories

import (
	"context"
	"errors"
	"sticker-shop/models"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaRepository struct {
	db *pgxpool.Pool
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *models.Media) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO media (alt, url, mime_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		m.Alt, m.URL, m.MimeType, time.Now(),
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *MediaRepository) GetByID(ctx context.Context, id int) (*models.Media, error) {
	var m models.Media
	err := r.db.QueryRow(ctx,
		"SELECT id, alt, url, mime_type, created_at FROM media WHERE id = $1", id,
	).Scan(&m.ID, &m.Alt, &m.URL, &m.MimeType, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM media WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMediaNotFound
	}
	return nil
}
