package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	back *image.RGBA

	mu     sync.Mutex
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	back := image.NewRGBA(image.Rect(0, 0, width, height))
	return &hostFramebuffer{
		back:  back,
		front: make([]byte, len(back.Pix)),
	}
}

func (f *hostFramebuffer) Width() int         { return f.back.Rect.Dx() }
func (f *hostFramebuffer) Height() int        { return f.back.Rect.Dy() }
func (f *hostFramebuffer) Image() *image.RGBA { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back.Pix)
	f.frames++
	return nil
}

func (f *hostFramebuffer) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}
