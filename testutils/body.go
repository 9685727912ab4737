package testutils

import (
	"context"
	"io"
	"sync"
)

// StallingBody returns Prefix and then blocks, like a client that stopped
// sending, until its context is done.
type StallingBody struct {
	ctx     context.Context
	prefix  []byte
	stalled chan struct{}
	once    sync.Once
	m       sync.Mutex
}

func NewStallingBody(ctx context.Context, prefix string) *StallingBody {
	return &StallingBody{
		ctx:     ctx,
		prefix:  []byte(prefix),
		stalled: make(chan struct{}),
	}
}

func (b *StallingBody) Read(p []byte) (int, error) {
	b.m.Lock()
	if len(b.prefix) > 0 {
		n := copy(p, b.prefix)
		b.prefix = b.prefix[n:]
		b.m.Unlock()
		return n, nil
	}
	b.m.Unlock()

	b.once.Do(func() { close(b.stalled) })
	<-b.ctx.Done()
	return 0, io.ErrUnexpectedEOF
}

func (b *StallingBody) Close() error {
	return nil
}

// Stalled is closed once the whole prefix has been consumed.
func (b *StallingBody) Stalled() <-chan struct{} {
	return b.stalled
}
