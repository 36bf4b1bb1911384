package domain

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// UnknownRegion is the canonical id for empty region input.
const UnknownRegion = "UNKNOWN"

// Canonical region ids.
const (
	RegionTashkentOblast  = "TOSHKENT OBL"
	RegionTashkentGeneral = "TOSHKENT OBSH"
	RegionTashkentCity    = "TOSHKENT CITY"
	RegionSurxandaryo     = "SURXANDARYO"
	RegionQashqadaryo     = "QASHQADARYO"
	RegionSamarqand       = "SAMARQAND"
	RegionBuxoro          = "BUXORO"
	RegionNamangan        = "NAMANGAN"
	RegionAndijon         = "ANDIJON"
	RegionFargona         = "FARG'ONA"
	RegionJizzax          = "JIZZAX"
	RegionNavoiy          = "NAVOIY"
	RegionXorazm          = "XORAZM"
	RegionNukus           = "NUKUS"
)

// RegionAlias maps one spelling of a region to its canonical id.
type RegionAlias struct {
	Alias     string
	Canonical string
}

// regionAliases is ordered: among aliases of equal length the earlier entry
// wins the substring scan.
var regionAliases = []RegionAlias{
	// Tashkent oblast, Sirdaryo included.
	{"ТАШКЕНТ (ОБЛ)", RegionTashkentOblast},
	{"ТАШКЕНТ(ОБЛ)", RegionTashkentOblast},
	{"TASHKENT (OBL)", RegionTashkentOblast},
	{"СЫРДАРЬЯ", RegionTashkentOblast},
	{"СИРДАРЁ", RegionTashkentOblast},
	{"SIRDARYO", RegionTashkentOblast},
	{"SIR", RegionTashkentOblast},
	{"SYRDARYA", RegionTashkentOblast},
	{"GULISTON", RegionTashkentOblast},
	{"YANGIYER", RegionTashkentOblast},
	{"YANGIYO'L", RegionTashkentOblast},
	{"YANGIYUL", RegionTashkentOblast},
	{"ANGREN", RegionTashkentOblast},
	{"CHIRCHIQ", RegionTashkentOblast},
	{"OLMALIQ", RegionTashkentOblast},
	{"BEKOBOD", RegionTashkentOblast},
	{"BUKA", RegionTashkentOblast},
	{"BOKA", RegionTashkentOblast},
	{"ТАШКЕНТ ОБЛ", RegionTashkentOblast},
	{"ТАШ ОБЛ", RegionTashkentOblast},
	{"ТАШ.ОБЛ", RegionTashkentOblast},
	{"TOSHKENT OBL", RegionTashkentOblast},
	{"TOSH OBL", RegionTashkentOblast},
	{"TOSH.OBL", RegionTashkentOblast},
	{"TOSHKENT VIL", RegionTashkentOblast},
	{"TOSH VIL", RegionTashkentOblast},
	{"T.VIL", RegionTashkentOblast},
	{"VILOYAT", RegionTashkentOblast},

	// Tashkent general.
	{"ТАШКЕНТ (ОБЩ)", RegionTashkentGeneral},
	{"ТАШКЕНТ(ОБЩ)", RegionTashkentGeneral},
	{"TASHKENT (OBSH)", RegionTashkentGeneral},
	{"ОБЩИЙ", RegionTashkentGeneral},
	{"ТАШКЕНТ ОБЩ", RegionTashkentGeneral},
	{"TOSHKENT OBSH", RegionTashkentGeneral},
	{"OBSH", RegionTashkentGeneral},
	{"OBS", RegionTashkentGeneral},
	{"UMUMIY", RegionTashkentGeneral},
	{"GENERAL", RegionTashkentGeneral},

	// Tashkent city. Shorter than the oblast/general aliases, so those win
	// whenever both occur.
	{"TOSHKENT CITY", RegionTashkentCity},
	{"ТАШКЕНТ", RegionTashkentCity},
	{"Г.ТАШКЕНТ", RegionTashkentCity},
	{"Т.Г", RegionTashkentCity},
	{"TOSHKENT", RegionTashkentCity},
	{"TOSH", RegionTashkentCity},
	{"TASHKENT", RegionTashkentCity},
	{"TASH", RegionTashkentCity},

	// Cyrillic region names.
	{"СУРХАНДАРЬЯ", RegionSurxandaryo},
	{"КАШКАДАРЬЯ", RegionQashqadaryo},
	{"САМАРКАНД", RegionSamarqand},
	{"БУХАРА", RegionBuxoro},
	{"НАМАНГАН", RegionNamangan},
	{"АНДИЖАН", RegionAndijon},
	{"ФЕРГАНА", RegionFargona},
	{"ДЖИЗАК", RegionJizzax},
	{"НАВОИ", RegionNavoiy},
	{"ХОРЕЗМ", RegionXorazm},
	{"НУКУС", RegionNukus},
	{"KARAKALPAKSTAN", RegionNukus},
	{"QORAQALPOGISTON", RegionNukus},

	// Latin canonical names.
	{RegionSurxandaryo, RegionSurxandaryo},
	{RegionQashqadaryo, RegionQashqadaryo},
	{RegionSamarqand, RegionSamarqand},
	{RegionBuxoro, RegionBuxoro},
	{RegionNamangan, RegionNamangan},
	{RegionAndijon, RegionAndijon},
	{RegionFargona, RegionFargona},
	{RegionJizzax, RegionJizzax},
	{RegionNavoiy, RegionNavoiy},
	{RegionXorazm, RegionXorazm},
	{RegionNukus, RegionNukus},

	// Short forms.
	{"SUR", RegionSurxandaryo},
	{"QASH", RegionQashqadaryo},
	{"SAM", RegionSamarqand},
	{"BUX", RegionBuxoro},
	{"NAM", RegionNamangan},
	{"AND", RegionAndijon},
	{"FERG", RegionFargona},
	{"FARG", RegionFargona},
	{"JIZ", RegionJizzax},
	{"NAV", RegionNavoiy},
	{"XOR", RegionXorazm},
	{"NUK", RegionNukus},
}

var defaultRegions = NewRegionNormalizer(regionAliases)

// RegionNormalizer canonicalizes region text against a fixed alias table.
// It is immutable after construction and safe for concurrent use.
type RegionNormalizer struct {
	exact    map[string]string
	byLength []RegionAlias
}

// NewRegionNormalizer builds a normalizer from an ordered alias table.
// Aliases are matched uppercased; the first occurrence of a duplicate wins.
func NewRegionNormalizer(aliases []RegionAlias) *RegionNormalizer {
	n := &RegionNormalizer{
		exact:    make(map[string]string, len(aliases)),
		byLength: make([]RegionAlias, 0, len(aliases)),
	}
	for _, a := range aliases {
		a.Alias = strings.ToUpper(strings.TrimSpace(a.Alias))
		if a.Alias == "" {
			continue
		}
		if _, dup := n.exact[a.Alias]; dup {
			continue
		}
		n.exact[a.Alias] = a.Canonical
		n.byLength = append(n.byLength, a)
	}

	slices.SortStableFunc(n.byLength, func(a, b RegionAlias) int {
		return utf8.RuneCountInString(b.Alias) - utf8.RuneCountInString(a.Alias)
	})
	return n
}

// Normalize maps free-text geography to a canonical region id.
//
// The input is uppercased and trimmed. An exact alias hit wins; otherwise the
// longest alias found inside the input decides. Unmatched input is returned
// as-is (uppercased), and empty input maps to UnknownRegion.
func (n *RegionNormalizer) Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return UnknownRegion
	}

	if canonical, ok := n.exact[s]; ok {
		return canonical
	}

	for _, a := range n.byLength {
		if strings.Contains(s, a.Alias) {
			return a.Canonical
		}
	}

	return s
}

// NormalizeRegion canonicalizes raw with the built-in Uzbek region table.
func NormalizeRegion(raw string) string {
	return defaultRegions.Normalize(raw)
}

// NormalizeRegions normalizes a comma-separated region list, dropping
// duplicates and blanks while keeping the first-seen order.
func NormalizeRegions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r := NormalizeRegion(part)
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
