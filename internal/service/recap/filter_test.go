package recap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_EligibilityIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	records := buildRecords(t,
		claim{hospital: "RS A", payment: "Unpaid", status: "done", gl: "ACTIVE"},
		claim{hospital: "RS A", payment: "paid", status: "done", gl: "active"},
		claim{hospital: "RS A", payment: "unpaid", status: "done", gl: "inactive"},
		claim{hospital: "RS A", payment: "", status: "done", gl: "active"},
		claim{hospital: "RS B", payment: " unpaid ", status: "new", gl: "Active"},
	)

	got := Filter(records, EligibilityFilters()...)
	assert.Len(t, got, 2)
	assert.Equal(t, "RS A", got[0].Value(ColHospital))
	assert.Equal(t, "RS B", got[1].Value(ColHospital))
}

func TestFilter_OrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	records := buildRecords(t,
		claim{hospital: "RS A", payment: "unpaid", status: "done", gl: "active", verified: "01-01-2024"},
		claim{hospital: "RS B", payment: "unpaid", status: "resend", gl: "active", verified: "-"},
		claim{hospital: "RS C", payment: "paid", status: "new", gl: "active", verified: "02-01-2024"},
	)

	a := Filter(records, Equals(ColPaymentStatus, "unpaid"), Present(ColVerificationDate), VerifiedFilter())
	b := Filter(records, VerifiedFilter(), Present(ColVerificationDate), Equals(ColPaymentStatus, "unpaid"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 1)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, Contains(ColVerificationStatus, "Resend").Match("Need RESEND"))
	assert.False(t, Contains(ColVerificationStatus, "resend").Match(""))
	assert.False(t, Equals(ColGLStatus, "active").Match(""))
	assert.False(t, Present(ColVerificationDate).Match("-"))
	assert.False(t, Present(ColVerificationDate).Match("  "))
	assert.True(t, Present(ColVerificationDate).Match("01-01-2024"))

	verified := VerifiedFilter()
	assert.True(t, verified.Match("Done"))
	assert.True(t, verified.Match("resend - waiting"))
	assert.False(t, verified.Match("done partially"), "done must match exactly")
	assert.Equal(t, `status verifikasi (== "done" or contains "resend")`, verified.String())
}
