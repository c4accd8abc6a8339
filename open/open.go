// Package open launches URLs with the system handler or a named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anisan-cli/reel/constant"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	return StartWith(input, "")
}

// StartWith opens input with app. An empty app uses the default handler.
func StartWith(input, app string) error {
	cmd, ok := command(input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		if app == "" {
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
		}
		// start treats & as a command separator.
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), true
	case constant.Darwin:
		if app == "" {
			return exec.Command("open", input), true
		}
		return exec.Command("open", "-a", app, input), true
	case constant.Linux:
		if app == "" {
			return exec.Command("xdg-open", input), true
		}
		return exec.Command(app, input), true
	case constant.Android:
		if app == "" {
			return exec.Command("termux-open", input), true
		}
		return exec.Command("termux-open", "--choose", input), true
	default:
		return nil, false
	}
}
