// Package clip reads the system clipboard with a bounded wait so the control
// loop never stalls on a slow or absent clipboard owner.
package clip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout bounds one clipboard round trip.
const DefaultTimeout = 500 * time.Millisecond

// ErrEmpty reports a clipboard with no usable text content.
var ErrEmpty = errors.New("clipboard empty")

// readAll is swapped out by tests.
var readAll = clipboard.ReadAll

type result struct {
	text string
	err  error
}

// Fetch reads the clipboard, failing once timeout elapses. A read that
// outlives the timeout finishes in its goroutine and is discarded via the
// buffered channel.
func Fetch(timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	results := make(chan result, 1)
	go func() {
		text, err := readAll()
		results <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("clipboard read: %w", ctx.Err())
	case res := <-results:
		if res.err != nil {
			return "", fmt.Errorf("clipboard read: %w", res.err)
		}
		if strings.TrimSpace(res.text) == "" {
			return "", ErrEmpty
		}
		return res.text, nil
	}
}
