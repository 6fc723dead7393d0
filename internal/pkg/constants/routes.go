package constants

// Route constants shared by controllers, middlewares and views
const (
	RouteHome             = "/"
	RouteRegister         = "/register"
	RouteLogin            = "/login"
	RouteLogout           = "/logout"
	RouteCitizenDashboard = "/citizen_dashboard"
	RouteComplaint        = "/complaint"
	RouteComplaintStatus  = "/complaint_status"

	RouteOfficerLogin      = "/officer_login"
	RouteOfficerLogout     = "/officer_logout"
	RouteOfficerDashboard  = "/officer_dashboard"
	RouteOfficerComplaints = "/officer_complaints"
	RouteSolve             = "/solve/:complaint_no"

	UploadsRoute = "/uploads"
	// Upload path without leading slash for URL construction
	UploadsPath = "uploads"
)
