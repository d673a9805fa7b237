package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldCardRef    = "card_ref"
	FieldAccountRef = "account_ref"
	FieldCurrency   = "currency"
	FieldCount      = "count"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentDataset  = "dataset"
	ComponentStorage  = "storage"
	ComponentInsights = "insights"
	ComponentCache    = "cache"
	ComponentImport   = "import"
)

// Standard operation names.
const (
	OpLoad      = "load"
	OpImport    = "import"
	OpQuery     = "query"
	OpSnapshot  = "snapshot"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
