package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.design/x/clipboard"
)

var errEmptyClipboard = errors.New("axisctl: clipboard holds no text")

// X11 and Wayland serve the clipboard from the owning process, so the
// export has to stay alive until someone else takes the clipboard.
var holdClipboard = runtime.GOOS != "darwin" && runtime.GOOS != "windows"

// clipboardWrite publishes data; the returned channel fires once the
// clipboard is overwritten.
var clipboardWrite = func(data []byte) (<-chan struct{}, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("axisctl: clipboard: %w", err)
	}
	return clipboard.Write(clipboard.FmtText, data), nil
}

var clipboardRead = func() ([]byte, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("axisctl: clipboard: %w", err)
	}
	return clipboard.Read(clipboard.FmtText), nil
}

// writeClipboard copies data and, where the platform needs it, waits until
// the clipboard changes hands or wait elapses. A zero wait holds until the
// clipboard is overwritten.
func writeClipboard(data []byte, wait time.Duration) error {
	changed, err := clipboardWrite(data)
	if err != nil {
		return err
	}
	if !holdClipboard {
		return nil
	}

	if wait > 0 {
		log.Printf("holding the clipboard for %s or until it is overwritten", wait)
		select {
		case <-changed:
		case <-time.After(wait):
		}
		return nil
	}
	log.Printf("holding the clipboard until it is overwritten (Ctrl-C to stop)")
	<-changed
	return nil
}

func readClipboard() ([]byte, error) {
	data, err := clipboardRead()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errEmptyClipboard
	}
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("axisctl: read: %w", err)
	}
	return data, nil
}
