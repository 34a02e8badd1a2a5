// Package sink delivers a finished web address somewhere: stdout, the
// default browser, or the clipboard.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/skratchdot/open-golang/open"
)

type Sink interface {
	Deliver(url string) error
}

// Printer writes the address followed by a newline.
type Printer struct {
	Out io.Writer
}

func (p Printer) Deliver(url string) error {
	_, err := fmt.Fprintln(p.Out, url)
	return err
}

// Browser opens the address with the platform's URL handler.
type Browser struct {
	Open func(url string) error
}

func NewBrowser() Browser {
	return Browser{Open: open.Start}
}

func (b Browser) Deliver(url string) error {
	if err := b.Open(url); err != nil {
		return fmt.Errorf("failed to open url %q: %w", url, err)
	}
	return nil
}

// Clipboard copies the address to the system clipboard.
type Clipboard struct {
	Write func(text string) error
}

func NewClipboard() Clipboard {
	return Clipboard{Write: copyClipboard}
}

func (c Clipboard) Deliver(url string) error {
	if err := c.Write(url); err != nil {
		return fmt.Errorf("failed to copy url: %w", err)
	}
	return nil
}

func copyClipboard(s string) error {
	if err := clipboard.WriteAll(s); err == nil {
		return nil
	}
	// fallback for Wayland
	if runtime.GOOS == "linux" {
		if err := exec.Command("wl-copy", s).Run(); err == nil {
			return nil
		}
	}
	return errors.New("clipboard unavailable")
}

// BestEffort delivers to an optional sink. A failure is logged as a
// warning and never returned.
type BestEffort struct {
	Sink   Sink
	Logger *log.Logger
}

func (b BestEffort) Deliver(url string) error {
	if err := b.Sink.Deliver(url); err != nil && b.Logger != nil {
		b.Logger.Warn("skipped optional delivery", "err", err)
	}
	return nil
}

// Tee delivers to every sink in order, stopping at the first error.
type Tee []Sink

func (t Tee) Deliver(url string) error {
	for _, s := range t {
		if err := s.Deliver(url); err != nil {
			return err
		}
	}
	return nil
}
