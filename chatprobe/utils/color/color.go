// chatprobe/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	labelColor   = color.New(color.FgCyan, color.Bold)
	idColor      = color.New(color.FgGreen)
	senderColor  = color.New(color.FgHiYellow, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

func ColorLabel(s string) string {
	return labelColor.Sprint(s)
}

func ColorID(s string) string {
	return idColor.Sprint(s)
}

func ColorSender(s string) string {
	return senderColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorSuccess(s string) string {
	return successColor.Sprint(s)
}

// Disable turns colors off, e.g. for --no-color or non-terminal output.
func Disable() {
	color.NoColor = true
}
