package api

const (
	pathGenerateOTP = "/auth/api/mobile/generate-otp/"
	pathVerifyOTP   = "/auth/api/mobile/verify-otp/"
	pathResendOTP   = "/auth/api/mobile/resend-otp/"
	pathLogout      = "/auth/api/mobile/logout/"

	pathAssignedComplaints = "/complaints/api/complaints/assigned/"
	pathUpdateStatusPrefix = "/complaints/api/complaints/update-status/"
	pathCustomers          = "/complaints/api/complaints/customers/"
	pathComplaintTypes     = "/complaints/api/complaints/types/"
	pathPriorities         = "/complaints/api/complaints/priorities/"
	pathExecutives         = "/complaints/api/complaints/executives/"
	pathCreateComplaint    = "/complaints/create/"

	pathCreateCustomer = "/complaints/api/complaints/customers/create/"
	pathApplyLeave     = "/leave/api/leave/apply/"
	pathCheckIn        = "/attendance/api/attendance/check-in/"
	pathCheckOut       = "/attendance/api/attendance/check-out/"
	pathCreateAMC      = "/amc/api/amc/create/"
)

// withReference appends a path parameter followed by "/". The value is
// inserted as is; callers must pass something safe for a URL path.
func withReference(prefix, reference string) string {
	return prefix + reference + "/"
}
