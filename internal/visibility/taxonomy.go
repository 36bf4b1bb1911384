package visibility

import (
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Scope is the set of plan record groups an access code resolves to.
//
// An unrestricted scope matches every group. Otherwise the record group must
// be one of Groups and, when Districts is non-empty, the record district must
// contain one of them (case-insensitive).
type Scope struct {
	Unrestricted bool
	Groups       []string
	Districts    []string
}

// Unrestricted is the scope that lifts group filtering.
func Unrestricted() Scope { return Scope{Unrestricted: true} }

// Exact is the scope that admits a single group token.
func Exact(group string) Scope { return Scope{Groups: []string{group}} }

// Matches reports whether the record falls inside the scope.
func (s Scope) Matches(rec *domain.PlanRecord) bool {
	if s.Unrestricted {
		return true
	}
	if !slices.Contains(s.Groups, rec.Group) {
		return false
	}
	if len(s.Districts) == 0 {
		return true
	}
	district := strings.ToLower(rec.District)
	for _, d := range s.Districts {
		if strings.Contains(district, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// sql renders the scope as a predicate over plan_records. A nil result means
// no constraint.
func (s Scope) sql() squirrel.Sqlizer {
	if s.Unrestricted {
		return nil
	}

	var group squirrel.Sqlizer
	if len(s.Groups) == 1 {
		group = squirrel.Eq{"group_name": s.Groups[0]}
	} else {
		group = squirrel.Eq{"group_name": s.Groups}
	}
	if len(s.Districts) == 0 {
		return group
	}

	districts := make(squirrel.Or, 0, len(s.Districts))
	for _, d := range s.Districts {
		districts = append(districts, squirrel.ILike{"district": "%" + escapeLike(d) + "%"})
	}
	return squirrel.And{group, districts}
}

// Taxonomy resolves a company-scoped group access code into a Scope.
type Taxonomy interface {
	Scope(accessCode string) Scope
}

// ---------------------------------------------------------------------------
// Strategies
// ---------------------------------------------------------------------------

// ExactTaxonomy compares the access code with the record group verbatim.
// ALL lifts the restriction.
type ExactTaxonomy struct{}

func (ExactTaxonomy) Scope(code string) Scope {
	if code == domain.GroupAccessAll {
		return Unrestricted()
	}
	return Exact(code)
}

// FlatTaxonomy is used by companies without sub-grouping: the group dimension
// is never filtered.
type FlatTaxonomy struct{}

func (FlatTaxonomy) Scope(string) Scope { return Unrestricted() }

// SplitTaxonomy expands umbrella access codes into fixed sets of group tokens.
// ALL lifts the restriction; codes without an umbrella match exactly.
type SplitTaxonomy struct {
	Umbrellas map[string][]string
}

func (t SplitTaxonomy) Scope(code string) Scope {
	if code == domain.GroupAccessAll {
		return Unrestricted()
	}
	if groups, ok := t.Umbrellas[code]; ok {
		return Scope{Groups: slices.Clone(groups)}
	}
	return Exact(code)
}

// DistrictScope restricts a base group to a list of district names.
type DistrictScope struct {
	Group     string
	Districts []string
}

// DistrictSplitTaxonomy has a few base groups and derived codes that narrow a
// base group to a district set. A bare base code sees the whole base group and
// ALL sees every base group. Other codes match exactly.
type DistrictSplitTaxonomy struct {
	Bases   []string
	Derived map[string]DistrictScope
}

func (t DistrictSplitTaxonomy) Scope(code string) Scope {
	switch {
	case code == domain.GroupAccessAll:
		return Scope{Groups: slices.Clone(t.Bases)}
	case slices.Contains(t.Bases, code):
		return Exact(code)
	}
	if d, ok := t.Derived[code]; ok {
		return Scope{Groups: []string{d.Group}, Districts: slices.Clone(d.Districts)}
	}
	return Exact(code)
}

// ---------------------------------------------------------------------------
// Built-in company taxonomies
// ---------------------------------------------------------------------------

// Tashkent city district sets used by district-split codes.
var (
	tashkentDistrictsEast = []string{
		"Бектемир", "Қибрай", "Мирзо Улуғбек", "Миробод",
		"Сирғали", "Юнусобод", "Янгиҳаёт", "Яшнобод",
	}
	tashkentDistrictsWest = []string{
		"Олмазор", "Келес", "Назарбек", "Учтепа",
		"Чилонзор", "Шайхонтохур", "Эшонгузар", "Яккасарой",
	}
)

// DefaultTaxonomies returns the built-in per-company strategies. Companies
// not listed fall back to ExactTaxonomy.
func DefaultTaxonomies() map[string]Taxonomy {
	return map[string]Taxonomy{
		"Synergy": SplitTaxonomy{Umbrellas: map[string][]string{
			"AB":    {"A", "B", "AB"},
			"A2C":   {"A2", "C", "A2C"},
			"A2CB2": {"A2", "C", "A2C", "B2"},
		}},
		"Amare": DistrictSplitTaxonomy{
			Bases: []string{"VITA", "FORTE"},
			Derived: map[string]DistrictScope{
				"VITA1":  {Group: "VITA", Districts: tashkentDistrictsEast},
				"VITA2":  {Group: "VITA", Districts: tashkentDistrictsWest},
				"FORTE1": {Group: "FORTE", Districts: tashkentDistrictsEast},
				"FORTE2": {Group: "FORTE", Districts: tashkentDistrictsWest},
			},
		},
		"Galassiya": FlatTaxonomy{},
		"Perfetto":  FlatTaxonomy{},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
