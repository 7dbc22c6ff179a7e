package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldKey       = "key"
	FieldID        = "id"
	FieldType      = "type"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldCategory  = "category"
	FieldAccount   = "account"
	FieldGoal      = "goal"
	FieldCount     = "count"
)

// Components defines standard component names
const (
	ComponentApp          = "app"
	ComponentStore        = "store"
	ComponentRepository   = "repository"
	ComponentTransactions = "transactions"
	ComponentAccounts     = "accounts"
	ComponentCategories   = "categories"
	ComponentGoal         = "goal"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSeed     = "seed"
	OpClear    = "clear"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
