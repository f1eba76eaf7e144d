package repositories

import (
	"context"
	"errors"
	"fmt"
	"sticker-shop/models"
	"sticker-shop/utils"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSlugTaken       = errors.New("slug already in use")
)

// publicLimit caps every public catalog query.
const publicLimit = 1000

const productColumns = `id, type, active, in_stock, name, slug, main_image_id,
	price, old_price, characteristics, description, seo_text, seo_title, seo_description,
	created_at, updated_at`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// assignSlug fills in the slug from the display name when the draft
// arrives without one. An already assigned slug is never regenerated.
func assignSlug(p *models.Product) {
	if p.Slug == "" && p.Name != "" {
		p.Slug = utils.Slugify(p.Name)
	}
}

// whereProducts renders the filter into a WHERE clause with positional
// args. active = true is always the first condition; nothing a caller
// passes in can remove it.
func whereProducts(filter models.ProductFilter) (string, []interface{}) {
	conds := []string{"active = true"}
	args := []interface{}{}

	if filter.Unsatisfiable {
		conds = append(conds, "false")
	}
	if filter.InStock != nil {
		args = append(args, *filter.InStock)
		conds = append(conds, fmt.Sprintf("in_stock = $%d", len(args)))
	}
	if filter.PriceFrom != nil {
		args = append(args, filter.PriceFrom.String())
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.PriceTo != nil {
		args = append(args, filter.PriceTo.String())
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// Find returns the active products matching the filter, newest first,
// with referenced media expanded, plus the total match count.
func (r *ProductRepository) Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	where, args := whereProducts(filter)

	var total int
	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY created_at DESC LIMIT %d",
		productColumns, where, publicLimit,
	)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachMedia(ctx, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetBySlug returns the active product with the given slug. The slug
// lookup never combines with stock, price or type filters.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE slug = $1 AND active = true LIMIT 1",
		productColumns,
	)
	rows, err := r.db.Query(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", slug, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrProductNotFound
	}
	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	products := []models.Product{p}
	if err := r.attachMedia(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrProductNotFound
	}
	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	products := []models.Product{p}
	if err := r.attachMedia(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// Create persists a new product. The slug is derived from the name just
// before the insert when the draft has none; a duplicate slug surfaces
// as ErrSlugTaken from the unique index.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	assignSlug(p)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO products (type, active, in_stock, name, slug, main_image_id,
			price, old_price, characteristics, description, seo_text, seo_title, seo_description,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id, created_at, updated_at`,
		p.Type, p.Active, p.InStock, p.Name, p.Slug, mainImageID(p),
		p.Pricing.Price.String(), oldPriceArg(p), p.Characteristics,
		p.Description, p.SeoText, p.SEO.Title, p.SEO.Description,
		now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return slugError(err)
	}

	if err := saveGallery(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update writes the full product row. assignSlug only fires when the
// caller cleared the slug, so an established slug survives renames.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	assignSlug(p)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE products SET type=$1, active=$2, in_stock=$3, name=$4, slug=$5,
			main_image_id=$6, price=$7, old_price=$8, characteristics=$9,
			description=$10, seo_text=$11, seo_title=$12, seo_description=$13, updated_at=$14
		WHERE id=$15`,
		p.Type, p.Active, p.InStock, p.Name, p.Slug, mainImageID(p),
		p.Pricing.Price.String(), oldPriceArg(p), p.Characteristics,
		p.Description, p.SeoText, p.SEO.Title, p.SEO.Description,
		time.Now(), p.ID,
	)
	if err != nil {
		return slugError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	if err := saveGallery(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func mainImageID(p *models.Product) interface{} {
	if p.MainImage == nil {
		return nil
	}
	return p.MainImage.ID
}

// oldPriceArg renders the optional old price the way the filter bounds
// travel: decimals go to NUMERIC columns as their exact strings.
func oldPriceArg(p *models.Product) interface{} {
	if p.Pricing.OldPrice == nil {
		return nil
	}
	return p.Pricing.OldPrice.String()
}

func slugError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrSlugTaken
	}
	return err
}

func saveGallery(ctx context.Context, tx pgx.Tx, p *models.Product) error {
	if _, err := tx.Exec(ctx, "DELETE FROM product_gallery WHERE product_id = $1", p.ID); err != nil {
		return err
	}
	for i, m := range p.Gallery {
		if _, err := tx.Exec(ctx,
			"INSERT INTO product_gallery (product_id, media_id, position) VALUES ($1, $2, $3)",
			p.ID, m.ID, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanProduct(rows pgx.Rows) (models.Product, error) {
	var (
		p           models.Product
		mainImageID *int
	)
	err := rows.Scan(
		&p.ID, &p.Type, &p.Active, &p.InStock, &p.Name, &p.Slug, &mainImageID,
		&p.Pricing.Price, &p.Pricing.OldPrice, &p.Characteristics,
		&p.Description, &p.SeoText, &p.SEO.Title, &p.SEO.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return p, fmt.Errorf("scanning product: %w", err)
	}
	if mainImageID != nil {
		p.MainImage = &models.Media{ID: *mainImageID}
	}
	return p, nil
}

// attachMedia expands media references in place: the main image plus the
// ordered gallery. This is the depth-2 expansion of the public endpoints.
func (r *ProductRepository) attachMedia(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	productIDs := make([]int, 0, len(products))
	mediaIDs := make([]int, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
		if p.MainImage != nil {
			mediaIDs = append(mediaIDs, p.MainImage.ID)
		}
	}

	type galleryEntry struct {
		productID int
		media     models.Media
	}
	var galleryEntries []galleryEntry

	rows, err := r.db.Query(ctx, `
		SELECT pg.product_id, m.id, m.alt, m.url, m.mime_type, m.created_at
		FROM product_gallery pg
		JOIN media m ON m.id = pg.media_id
		WHERE pg.product_id = ANY($1)
		ORDER BY pg.product_id, pg.position`,
		productIDs,
	)
	if err != nil {
		return fmt.Errorf("loading gallery: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e galleryEntry
		if err := rows.Scan(&e.productID, &e.media.ID, &e.media.Alt, &e.media.URL,
			&e.media.MimeType, &e.media.CreatedAt); err != nil {
			return err
		}
		galleryEntries = append(galleryEntries, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	mediaByID := map[int]models.Media{}
	if len(mediaIDs) > 0 {
		mediaRows, err := r.db.Query(ctx,
			"SELECT id, alt, url, mime_type, created_at FROM media WHERE id = ANY($1)",
			mediaIDs,
		)
		if err != nil {
			return fmt.Errorf("loading media: %w", err)
		}
		defer mediaRows.Close()

		for mediaRows.Next() {
			var m models.Media
			if err := mediaRows.Scan(&m.ID, &m.Alt, &m.URL, &m.MimeType, &m.CreatedAt); err != nil {
				return err
			}
			mediaByID[m.ID] = m
		}
		if err := mediaRows.Err(); err != nil {
			return err
		}
	}

	for i := range products {
		p := &products[i]
		if p.MainImage != nil {
			if m, ok := mediaByID[p.MainImage.ID]; ok {
				p.MainImage = &m
			}
		}
		for _, e := range galleryEntries {
			if e.productID == p.ID {
				p.Gallery = append(p.Gallery, e.media)
			}
		}
	}
	return nil
}
