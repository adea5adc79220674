package site

import (
	"fmt"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
)

// Handler serves an exported site from dir.
func Handler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

// Serve starts a local HTTP file server for an exported site.
func Serve(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		if err := OpenBrowser(url); err != nil {
			fmt.Printf("Could not open a browser: %v\n", err)
		}
	}

	fmt.Printf("Serving exported digests at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(addr, Handler(dir))
}

// OpenBrowser opens the given http(s) URL in the default browser.
func OpenBrowser(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
