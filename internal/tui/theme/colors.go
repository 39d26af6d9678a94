package theme

// Terminal-compatible color constants using ANSI standard colors
// These colors work consistently across different terminal themes
const (
	ColorWhite        = "#FFFFFF" // primary text
	ColorBrightBlack  = "#808080" // secondary text
	ColorBrightBlue   = "#5C7CFA" // primary accent
	ColorBrightCyan   = "#51CF66" // secondary accent
	ColorBrightYellow = "#FFD43B" // warning
	ColorBrightRed    = "#FF6B6B" // error

	ColorDirectory = "#74C0FC" // directory entries
	ColorSelection = "#4A90E2" // selected row background
)
