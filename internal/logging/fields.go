package logging

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldIdentity   = "identity"
	FieldState      = "state"
	FieldAccountID  = "account_id"
)

// Component names.
const (
	ComponentApp       = "app"
	ComponentSession   = "session"
	ComponentGateway   = "gateway"
	ComponentDashboard = "dashboard"
	ComponentTransfer  = "transfer"
	ComponentStatement = "statement"
	ComponentStorage   = "storage"
)
