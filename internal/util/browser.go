package util

import (
	"os/exec"
	"runtime"
)

// browserCommands candidate commands that open url on goos, tried in order
func browserCommands(goos, url string) [][]string {
	switch goos {
	case "windows":
		// rundll32 also works on Windows 7 where "cmd /c start" is unreliable
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"sensible-browser", url},
			{"google-chrome", url},
			{"firefox", url},
		}
	}
}

// OpenBrowser opens url in the default browser, falling back to common
// browsers when the platform opener is missing.
func OpenBrowser(url string) error {
	var err error
	for _, args := range browserCommands(runtime.GOOS, url) {
		if err = exec.Command(args[0], args[1:]...).Start(); err == nil {
			return nil
		}
	}
	return err
}
