package util

import "testing"

func TestBrowserCommands(t *testing.T) {
	t.Parallel()

	url := "http://localhost:5500"
	for _, goos := range []string{"windows", "darwin", "linux", "freebsd"} {
		cmds := browserCommands(goos, url)
		if len(cmds) == 0 {
			t.Fatalf("no commands for %s", goos)
		}
		for _, c := range cmds {
			if c[len(c)-1] != url {
				t.Fatalf("%s: url must be the last argument, got %v", goos, c)
			}
		}
	}
	if got := browserCommands("darwin", url)[0][0]; got != "open" {
		t.Fatalf("darwin opener=%q, want open", got)
	}
}
