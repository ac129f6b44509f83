package recap

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

var spaceRunRe = regexp.MustCompile(`\s+`)

// HospitalKeyer derives the grouping key of a hospital name. With folding on,
// names differing only in case, whitespace or diacritics share a group, shown
// under the first spelling the keyer saw.
type HospitalKeyer struct {
	fold  bool
	caser cases.Caser
	names map[string]string
}

// NewHospitalKeyer creates a keyer; a keyer is not safe for concurrent use.
func NewHospitalKeyer(fold bool) *HospitalKeyer {
	return &HospitalKeyer{
		fold:  fold,
		caser: cases.Fold(),
		names: make(map[string]string),
	}
}

// Learn records display names for records in order, so that every table
// built with this keyer shows a group the same way.
func (k *HospitalKeyer) Learn(records []parser.Record) {
	for _, r := range records {
		k.Display(r.Value(ColHospital))
	}
}

// Display the name as shown in the report
func (k *HospitalKeyer) Display(name string) string {
	if !k.fold {
		return name
	}
	key := k.Key(name)
	if display, ok := k.names[key]; ok {
		return display
	}
	display := collapseSpaces(name)
	k.names[key] = display
	return display
}

// Key the grouping key of name
func (k *HospitalKeyer) Key(name string) string {
	if !k.fold {
		return name
	}
	return k.caser.String(unidecode.Unidecode(collapseSpaces(name)))
}

func collapseSpaces(name string) string {
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(name), " ")
}
