package modelspec

import "context"

// CancelToken is a one-shot cooperative cancellation signal (§3), grounded
// on azcopy's jobMgr.ctx/cancel pair: a plain context.CancelFunc gives the
// same "signal once, observable everywhere" semantics as a boolean flag,
// plus a Done channel pipelines can select on between chunks.
type CancelToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewCancelToken mints a fresh, unsignaled token.
func NewCancelToken() *CancelToken {
	ctx, cancel := context.WithCancel(context.Background())
	return &CancelToken{ctx: ctx, cancel: cancel}
}

// Cancel signals the token. Safe to call more than once.
func (c *CancelToken) Cancel() {
	c.cancel()
}

// Cancelled reports whether the token has been signaled.
func (c *CancelToken) Cancelled() bool {
	return c.ctx.Err() != nil
}

// Done returns a channel that closes when the token is signaled.
func (c *CancelToken) Done() <-chan struct{} {
	return c.ctx.Done()
}
