package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Partition identifies which of the two task collections a task lives in
type Partition string

const (
	AppName            = "zenfocus"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/zenfocus/zenfocus.db"
	Version            = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Partition constants
	PartitionToday   Partition = "today"
	PartitionSomeday Partition = "someday"

	// Config table keys
	ConfigLastDailyFocusResetDate = "last_daily_focus_reset_date"
	ConfigLastPlanDate            = "last_plan_date"

	// Validation limits
	MaxTaskTitleLen    = 200
	MaxCategoryNameLen = 60

	// MaxSuggestions caps the category suggestion list
	MaxSuggestions = 10

	// RootCategoryName is the implicit bucket new inline categories land under
	RootCategoryName = "Uncategorized"

	// DefaultRowHeight is the assumed height of a task row when resolving
	// drop positions, matching the desktop client's list rows
	DefaultRowHeight = 50.0

	// Notify constants
	NotifierLockfileName   = "zenfocus-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.zenfocus"
)

// Session States
const (
	StateBoard SessionState = iota
	StateAddTask
	StateConfirmReset
	StateConfirmDelete
)
