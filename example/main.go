// Package main demonstrates usage of the scg-fatal package.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/next-trace/scg-fatal/fatal"
)

var (
	errBusy    = errors.New("resource busy")
	errCorrupt = errors.New("state corrupt")
)

// load is flaky: busy twice, corrupt on the fifth attempt, otherwise fine.
func load(attempt int) (string, *fatal.Error[error]) {
	switch {
	case attempt < 3:
		e := fatal.NonFatal(errBusy)
		return "", &e
	case attempt == 5:
		e := fatal.Fatal(errCorrupt)
		return "", &e
	default:
		return "payload", nil
	}
}

func main() {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxElapsedTime = time.Second

	attempt := 0

	var result string

	err := backoff.Retry(func() error {
		attempt++

		v, cerr := load(attempt)
		if cerr == nil {
			result = v
			return nil
		}

		// Non-fatal classifications are retried; fatal ones stop the loop.
		if cerr.IsFatal() {
			return backoff.Permanent(cerr.Inner())
		}

		return cerr
	}, b)
	if err != nil {
		fmt.Println("gave up:", err)
		return
	}

	fmt.Printf("loaded %q after %d attempts\n", result, attempt)

	// Plain error pipelines use the Mark/Is helpers instead of the generic type.
	wrapped := fmt.Errorf("boot: %w", fatal.MarkFatal(errCorrupt))
	fmt.Println(wrapped, "fatal:", fatal.IsFatal(wrapped))
}
