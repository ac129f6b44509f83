package recap

// Logical column names, lowercase as resolved against the header row
const (
	ColHospital           = "nama rumah sakit"
	ColPaymentStatus      = "status pembayaran"
	ColVerificationStatus = "status verifikasi"
	ColGLStatus           = "gl status"
	ColVerificationDate   = "tanggal verifikasi"
	ColSubmissionDate     = "tanggal klaim diajukan"
)

// Eligibility values
const (
	PaymentUnpaid = "unpaid"
	GLActive      = "active"
)

// SummaryColumns columns the Summary sheet needs, in resolution order
var SummaryColumns = []string{
	ColHospital,
	ColPaymentStatus,
	ColVerificationStatus,
	ColGLStatus,
}
