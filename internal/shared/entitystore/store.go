// Package entitystore is the uniform company-scoped CRUD adapter every module
// persists through: list, filter, get, create, versioned update and delete.
package entitystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound        = errors.New("entitystore: record not found")
	ErrVersionConflict = errors.New("entitystore: version conflict")
	ErrUnknownFilter   = errors.New("entitystore: unknown filter column")
)

type ListOptions struct {
	OrderBy string
	Desc    bool
	Limit   int
}

type Config struct {
	// Orderable and Filterable whitelist column names accepted from callers.
	Orderable    []string
	Filterable   []string
	DefaultOrder string
	DefaultDesc  bool
}

type Store[T any] struct {
	db           *gorm.DB
	orderable    map[string]struct{}
	filterable   map[string]struct{}
	defaultOrder string
	defaultDesc  bool
}

func New[T any](db *gorm.DB, cfg Config) *Store[T] {
	s := &Store[T]{
		db:           db,
		orderable:    make(map[string]struct{}, len(cfg.Orderable)),
		filterable:   make(map[string]struct{}, len(cfg.Filterable)),
		defaultOrder: cfg.DefaultOrder,
		defaultDesc:  cfg.DefaultDesc,
	}
	for _, c := range cfg.Orderable {
		s.orderable[c] = struct{}{}
	}
	for _, c := range cfg.Filterable {
		s.filterable[c] = struct{}{}
	}
	if s.defaultOrder == "" {
		s.defaultOrder = "created_at"
		s.defaultDesc = true
	}
	return s
}

// WithTx returns a copy of the store whose statements run on tx.
func (s *Store[T]) WithTx(tx *sql.Tx) *Store[T] {
	cp := *s
	cp.db = BindTx(s.db, tx)
	return &cp
}

// DB exposes the underlying handle for module-specific queries.
func (s *Store[T]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// BindTx points a gorm handle at an already-open *sql.Tx so repositories can
// join a transaction started by the service layer.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	bound.Statement.ConnPool = tx
	return bound
}

func (s *Store[T]) List(ctx context.Context, companyID string, opts ListOptions) ([]T, error) {
	return s.Filter(ctx, companyID, nil, opts)
}

func (s *Store[T]) Filter(ctx context.Context, companyID string, where map[string]any, opts ListOptions) ([]T, error) {
	q := s.db.WithContext(ctx).Where("company_id = ?", companyID)

	for col, val := range where {
		if _, ok := s.filterable[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, col)
		}
		q = q.Where(clause.Eq{Column: clause.Column{Name: col}, Value: val})
	}

	q = q.Order(s.orderClause(opts))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var items []T
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) orderClause(opts ListOptions) clause.OrderByColumn {
	col, desc := s.defaultOrder, s.defaultDesc
	if _, ok := s.orderable[opts.OrderBy]; ok && opts.OrderBy != "" {
		col, desc = opts.OrderBy, opts.Desc
	}
	return clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}
}

func (s *Store[T]) Get(ctx context.Context, companyID, id string) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update applies changes only when the stored version equals
// expectedVersion, and bumps the version in the same statement.
func (s *Store[T]) Update(ctx context.Context, companyID, id string, expectedVersion int64, changes map[string]any) error {
	values := make(map[string]any, len(changes)+2)
	for k, v := range changes {
		values[k] = v
	}
	values["version"] = gorm.Expr("version + 1")
	values["updated_at"] = time.Now().UTC()

	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("company_id = ? AND id = ? AND version = ?", companyID, id, expectedVersion).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrVersionConflict
}

func (s *Store[T]) Delete(ctx context.Context, companyID, id string) error {
	res := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
