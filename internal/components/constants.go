package components

// UI component constants
const (
	// MaxOutputLines is how many output lines the buffer keeps before
	// dropping the oldest.
	MaxOutputLines = 200

	// MaxHistoryRows is how many deduplicated history entries are listed
	// under the prompt.
	MaxHistoryRows = 5

	// ReservedLines is the number of lines the view always spends on chrome:
	// the frame border, the prompt, the suggestion hint and the help line.
	ReservedLines = 4

	// DefaultWidth and DefaultHeight size the view until the first
	// tea.WindowSizeMsg arrives.
	DefaultWidth  = 80
	DefaultHeight = 24

	promptSymbol = "> "
	cursorBlock  = "█"
)
