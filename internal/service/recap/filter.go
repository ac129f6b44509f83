package recap

import (
	"fmt"
	"strings"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

// Predicate a condition over one resolved column
type Predicate struct {
	Column string
	Desc   string
	Match  func(value string) bool
}

// Keep applies the predicate to one record
func (p Predicate) Keep(r parser.Record) bool {
	return p.Match(r.Value(p.Column))
}

func (p Predicate) String() string {
	return p.Column + " " + p.Desc
}

// Equals lowercased, trimmed equality with want
func Equals(column, want string) Predicate {
	want = parser.NormalizeValue(want)
	return Predicate{
		Column: column,
		Desc:   fmt.Sprintf("== %q", want),
		Match: func(v string) bool {
			return v != "" && parser.NormalizeValue(v) == want
		},
	}
}

// Contains lowercased substring containment of sub
func Contains(column, sub string) Predicate {
	sub = strings.ToLower(sub)
	return Predicate{
		Column: column,
		Desc:   fmt.Sprintf("contains %q", sub),
		Match: func(v string) bool {
			return v != "" && strings.Contains(strings.ToLower(v), sub)
		},
	}
}

// Present non-empty and not the "-" placeholder
func Present(column string) Predicate {
	return Predicate{
		Column: column,
		Desc:   "is present",
		Match: func(v string) bool {
			return !parser.IsPlaceholder(v)
		},
	}
}

// AnyOf holds when any of preds holds; all preds must target column.
func AnyOf(column string, preds ...Predicate) Predicate {
	descs := make([]string, 0, len(preds))
	for _, p := range preds {
		descs = append(descs, p.Desc)
	}
	return Predicate{
		Column: column,
		Desc:   "(" + strings.Join(descs, " or ") + ")",
		Match: func(v string) bool {
			for _, p := range preds {
				if p.Match(v) {
					return true
				}
			}
			return false
		},
	}
}

// Filter keeps the records that satisfy every predicate.
func Filter(records []parser.Record, preds ...Predicate) []parser.Record {
	out := make([]parser.Record, 0, len(records))
	for _, r := range records {
		if keepAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func keepAll(r parser.Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Keep(r) {
			return false
		}
	}
	return true
}

// EligibilityFilters unpaid payment status and active GL status
func EligibilityFilters() []Predicate {
	return []Predicate{
		Equals(ColPaymentStatus, PaymentUnpaid),
		Equals(ColGLStatus, GLActive),
	}
}

// VerifiedFilter status verifikasi equal to "done" or containing "resend"
func VerifiedFilter() Predicate {
	return AnyOf(ColVerificationStatus,
		Equals(ColVerificationStatus, "done"),
		Contains(ColVerificationStatus, "resend"),
	)
}
