// Package browser opens site pages and external links in the user's
// default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
)

// Opener starts the platform browser command.
type Opener struct {
	// BaseURL is prefixed to internal targets such as "/speakers/x".
	BaseURL string

	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an opener that resolves internal targets against baseURL.
func NewOpener(baseURL string) *Opener {
	return &Opener{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		goos:    runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Resolve returns the absolute URL for a record target. External targets
// are returned as they are.
func (o *Opener) Resolve(target string) (string, error) {
	if domain.IsExternalTarget(target) {
		return target, nil
	}
	if o.BaseURL == "" {
		return "", fmt.Errorf("no base URL to open %q: %w", target, domain.ErrInvalidInput)
	}
	if _, err := url.Parse(o.BaseURL + target); err != nil {
		return "", fmt.Errorf("invalid target %q: %w", target, domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return o.BaseURL + target, nil
}

// Open resolves target and opens it.
func (o *Opener) Open(target string) error {
	u, err := o.Resolve(target)
	if err != nil {
		return err
	}

	switch o.goos {
	case "darwin":
		return o.start("open", u)
	case "linux", "freebsd", "openbsd", "netbsd":
		return o.start("xdg-open", u)
	case "windows":
		return o.start("rundll32", "url.dll,FileProtocolHandler", u)
	default:
		return fmt.Errorf("unsupported platform: %s", o.goos)
	}
}
