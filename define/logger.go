package define

import "github.com/pterm/pterm"

var logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)

// SetLogger replaces the logger used to report recoverable problems,
// such as replacing a block that is not in a palette.
func SetLogger(l *pterm.Logger) {
	if l != nil {
		logger = l
	}
}
