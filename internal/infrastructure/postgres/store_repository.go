package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, owner_id, name, slug, owner_name, email, whatsapp, logo, description, theme, visits, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `INSERT INTO stores (` + storeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OwnerID, s.Name, s.Slug, s.OwnerName, s.Email, s.WhatsApp, s.Logo, s.Description,
		s.Theme, s.Visits, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return storeWriteError("insert store", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.get(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetBySlug obtiene una tienda por slug.
func (r *StoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return r.get(ctx, `SELECT `+storeColumns+` FROM stores WHERE slug = $1`, slug)
}

func (r *StoreRepo) get(ctx context.Context, query, arg string) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// Update actualiza el perfil de la tienda. Las visitas solo cambian vía IncrementVisits.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, slug = $3, owner_name = $4, email = $5, whatsapp = $6, logo = $7,
			description = $8, theme = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Slug, s.OwnerName, s.Email, s.WhatsApp, s.Logo, s.Description, s.Theme, s.UpdatedAt,
	)
	if err != nil {
		return storeWriteError("update store", err)
	}
	return nil
}

// List devuelve todas las tiendas por fecha de creación.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// IncrementVisits suma una visita de forma atómica en la base.
func (r *StoreRepo) IncrementVisits(ctx context.Context, slug string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE stores SET visits = visits + 1 WHERE slug = $1`, slug)
	if err != nil {
		return false, fmt.Errorf("increment visits: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SlugExists informa si otra tienda distinta de excludeID usa el slug.
func (r *StoreRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE slug = $1 AND id <> $2)`, slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

func storeWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		if constraintName(err) == "stores_slug_key" {
			return domain.ErrSlugTaken
		}
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.OwnerName, &s.Email, &s.WhatsApp, &s.Logo,
		&s.Description, &s.Theme, &s.Visits, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
