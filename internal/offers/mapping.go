package offers

import (
	"net/url"

	"github.com/JaimeStill/offer-board/pkg/query"
	"github.com/JaimeStill/offer-board/pkg/repository"
)

var projection = query.NewProjectionMap("public", "offers", "o").
	Project("id", "id").
	Project("title", "title").
	Project("description", "description").
	Project("company", "company").
	Project("location", "location").
	Project("contract_type", "contract_type").
	Project("rome_code", "rome_code").
	Project("rome_label", "rome_label").
	Project("url", "url").
	Project("published_at", "published_at").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

// Undated offers list after dated ones; id keeps equal dates in a stable order.
var defaultSort = query.SortField{Field: "published_at", Descending: true, NullsLast: true}

func newListBuilder() *query.Builder {
	return query.NewBuilder(projection, defaultSort).Tiebreak("id")
}

func scanOffer(s repository.Scanner) (Offer, error) {
	var o Offer
	err := s.Scan(
		&o.ID, &o.Title, &o.Description, &o.Company, &o.Location, &o.ContractType,
		&o.RomeCode, &o.RomeLabel, &o.URL, &o.PublishedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Filters narrows offer listings.
type Filters struct {
	ContractType *string
	Location     *string
	RomeCode     *string
}

// FiltersFromQuery reads contract_type, location, and rome_code from query values.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		ContractType: optional(values.Get("contract_type")),
		Location:     optional(values.Get("location")),
		RomeCode:     optional(values.Get("rome_code")),
	}
}

// Apply adds the filter conditions to b. Location matches partially.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEqualsString("contract_type", f.ContractType).
		WhereContains("location", f.Location).
		WhereEqualsString("rome_code", f.RomeCode)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
