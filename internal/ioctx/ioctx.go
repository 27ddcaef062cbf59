// Package ioctx wraps readers and writers with context cancellation checks.
//
// Every streaming operation in this module is written once as a synchronous
// loop over an io.Reader/io.Writer pair. The context-aware entry points drive
// the same loop through these wrappers, which check the context at each
// read/write boundary and perform no additional buffering or reordering.
package ioctx

import (
	"context"
	"io"
)

type reader struct {
	ctx context.Context
	r   io.Reader
}

func (r *reader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

type writer struct {
	ctx context.Context
	w   io.Writer
}

func (w *writer) Write(p []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}
	return w.w.Write(p)
}

// Reader returns an io.Reader that fails with the context's error once ctx is
// done. Reads already in flight are not interrupted.
func Reader(ctx context.Context, r io.Reader) io.Reader {
	return &reader{ctx: ctx, r: r}
}

// Writer returns an io.Writer that fails with the context's error once ctx is
// done.
func Writer(ctx context.Context, w io.Writer) io.Writer {
	return &writer{ctx: ctx, w: w}
}
