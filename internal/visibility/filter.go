// Package visibility decides which plan records an account may see.
//
// Tenancy is evaluated in a fixed order: company, then region, then the
// company's group taxonomy, then the caller's ad hoc filters. The same rules
// back both the in-memory path (Visible, CanSee) and the SQL path (Predicate).
package visibility

import (
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Query holds ad hoc filters applied after tenancy rules.
type Query struct {
	// Company is only honoured for admins; managers are pinned to their own.
	Company string
	// Region and Group are admin overrides; ignored for managers.
	Region string
	Group  string
	// Doctor is a case-insensitive substring of the doctor name.
	Doctor string
	// Month filters by plan month when non-zero.
	Month int
}

// Filter applies company-scoped visibility rules.
type Filter struct {
	taxonomies map[string]Taxonomy
	fallback   Taxonomy
}

// NewFilter creates a Filter with the given per-company taxonomies. Companies
// without an entry use ExactTaxonomy.
func NewFilter(taxonomies map[string]Taxonomy) *Filter {
	t := make(map[string]Taxonomy, len(taxonomies))
	for company, tax := range taxonomies {
		t[company] = tax
	}
	return &Filter{taxonomies: t, fallback: ExactTaxonomy{}}
}

// TaxonomyFor returns the strategy registered for company.
func (f *Filter) TaxonomyFor(company string) Taxonomy {
	if t, ok := f.taxonomies[company]; ok {
		return t
	}
	return f.fallback
}

// tenancy is the resolved access boundary of one account for one query.
type tenancy struct {
	company string
	regions []string
	scope   Scope
}

func (f *Filter) resolve(acc *domain.Account, q Query) (tenancy, error) {
	if acc.IsAdmin() {
		company := strings.TrimSpace(q.Company)
		if company == "" {
			return tenancy{}, domain.NewValidationError("company", "required")
		}
		t := tenancy{company: company, scope: Unrestricted()}
		if r := strings.TrimSpace(q.Region); r != "" {
			t.regions = []string{domain.NormalizeRegion(r)}
		}
		if g := strings.TrimSpace(q.Group); g != "" {
			t.scope = Exact(strings.ToUpper(g))
		}
		return t, nil
	}

	if acc.Company == "" || acc.GroupAccess == "" {
		return tenancy{}, domain.ErrForbidden
	}
	return tenancy{
		company: acc.Company,
		regions: acc.Regions,
		scope:   f.TaxonomyFor(acc.Company).Scope(acc.GroupAccess),
	}, nil
}

func (t tenancy) admits(rec *domain.PlanRecord) bool {
	if rec.Company != t.company {
		return false
	}
	if len(t.regions) > 0 && !slices.Contains(t.regions, rec.Region) {
		return false
	}
	return t.scope.Matches(rec)
}

// CanSee reports whether the account may access the record directly.
// Admins have global scope; managers go through company, region and
// taxonomy rules.
func (f *Filter) CanSee(acc *domain.Account, rec *domain.PlanRecord) bool {
	if acc.IsAdmin() {
		return true
	}
	t, err := f.resolve(acc, Query{})
	if err != nil {
		return false
	}
	return t.admits(rec)
}

// Visible returns the subset of records the account may see under q.
// The result order follows the input order.
func (f *Filter) Visible(acc *domain.Account, records []domain.PlanRecord, q Query) []domain.PlanRecord {
	t, err := f.resolve(acc, q)
	if err != nil {
		return nil
	}

	doctor := strings.ToLower(strings.TrimSpace(q.Doctor))
	out := make([]domain.PlanRecord, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !t.admits(rec) {
			continue
		}
		if q.Month != 0 && rec.Month != q.Month {
			continue
		}
		if doctor != "" && !strings.Contains(strings.ToLower(rec.DoctorName), doctor) {
			continue
		}
		out = append(out, *rec)
	}
	return out
}

// Predicate builds the WHERE clause for the ledger query equivalent to
// Visible. Column names refer to the plan_records table.
func (f *Filter) Predicate(acc *domain.Account, q Query) (squirrel.Sqlizer, error) {
	t, err := f.resolve(acc, q)
	if err != nil {
		return nil, err
	}

	where := squirrel.And{squirrel.Eq{"company": t.company}}
	switch len(t.regions) {
	case 0:
	case 1:
		where = append(where, squirrel.Eq{"region": t.regions[0]})
	default:
		where = append(where, squirrel.Eq{"region": t.regions})
	}
	if scope := t.scope.sql(); scope != nil {
		where = append(where, scope)
	}

	if q.Month != 0 {
		where = append(where, squirrel.Eq{"month": q.Month})
	}
	if d := strings.TrimSpace(q.Doctor); d != "" {
		where = append(where, squirrel.ILike{"doctor_name": "%" + escapeLike(d) + "%"})
	}
	return where, nil
}
