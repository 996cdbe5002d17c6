package offers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/offer-board/pkg/pagination"
	"github.com/JaimeStill/offer-board/pkg/query"
	"github.com/JaimeStill/offer-board/pkg/repository"
)

const upsertSQL = `
	INSERT INTO offers (id, title, description, company, location, contract_type, rome_code, rome_label, url, published_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		company = EXCLUDED.company,
		location = EXCLUDED.location,
		contract_type = EXCLUDED.contract_type,
		rome_code = EXCLUDED.rome_code,
		rome_label = EXCLUDED.rome_label,
		url = EXCLUDED.url,
		published_at = EXCLUDED.published_at,
		updated_at = NOW()
	RETURNING id, title, description, company, location, contract_type, rome_code, rome_label, url, published_at, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an offers repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "offers"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Offer], error) {
	page.Normalize(r.pagination)

	qb := newListBuilder().
		WhereSearch(page.Search, "title", "company", "description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count offers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	offers, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOffer)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}

	result := pagination.NewPageResult(offers, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Offer, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("id", id)

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOffer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) Save(ctx context.Context, offer Offer) (*Offer, error) {
	if err := offer.Validate(); err != nil {
		return nil, err
	}

	o, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Offer, error) {
		return Upsert(ctx, tx, offer)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("offer saved", "id", o.ID, "title", o.Title)
	return &o, nil
}

func (r *repo) SaveAll(ctx context.Context, offers []Offer) (int, error) {
	for _, o := range offers {
		if err := o.Validate(); err != nil {
			return 0, fmt.Errorf("offer %q: %w", o.ID, err)
		}
	}

	n, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int, error) {
		for i, o := range offers {
			if _, err := Upsert(ctx, tx, o); err != nil {
				return i, fmt.Errorf("offer %q: %w", o.ID, err)
			}
		}
		return len(offers), nil
	})
	if err != nil {
		return 0, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("offers saved", "count", n)
	return n, nil
}

func (r *repo) Match(ctx context.Context, id, cvText string) (*MatchResult, error) {
	offer, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := Analyze(*offer, cvText)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("cv matched", "id", id, "rate", result.Rate)
	return result, nil
}

// Upsert inserts o or replaces the stored offer with the same ID using q,
// which may be a transaction shared with other writes. The offer is not validated.
func Upsert(ctx context.Context, q repository.Querier, o Offer) (Offer, error) {
	return repository.QueryOne(ctx, q, upsertSQL, upsertArgs(o), scanOffer)
}

func upsertArgs(o Offer) []any {
	return []any{
		o.ID, o.Title, o.Description, o.Company, o.Location, o.ContractType,
		o.RomeCode, o.RomeLabel, o.URL, o.PublishedAt,
	}
}
