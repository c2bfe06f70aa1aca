package notify

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
)

// Writer prints notifications as lines, e.g. "[ok] #1 Password changed".
// Updates carry the id of the loading line they replace.
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	next atomic.Int64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Loading(_ context.Context, msg string) ID {
	id := ID(strconv.FormatInt(w.next.Add(1), 10))
	w.print("loading", id, msg)
	return id
}

func (w *Writer) Success(_ context.Context, id ID, msg string) {
	w.print("ok", id, msg)
}

func (w *Writer) Error(_ context.Context, id ID, msg string) {
	w.print("error", id, msg)
}

func (w *Writer) print(tag string, id ID, msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.w, "[%s] #%s %s\n", tag, id, msg)
}
