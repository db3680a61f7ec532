package bitmap

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

type options struct {
	workers int
}

// Option configures how a transform is scheduled.
type Option func(*options)

// WithWorkers sets the number of goroutines that process rows. Zero or a
// negative value means runtime.GOMAXPROCS(0), 1 runs on the calling
// goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// pixelFunc computes the output pixel for the input pixel p at (x, y).
type pixelFunc func(x, y int, p Pixel) Pixel

// mapPixels allocates a new image with the bounds of src and fills it with
// fn applied to every pixel of src. Each output row is written by exactly
// one goroutine.
func mapPixels(src *Image, fn pixelFunc, opts ...Option) *Image {
	o := newOptions(opts)
	dst := NewImage(src.Rect)

	row := func(y int) {
		si := src.PixOffset(src.Rect.Min.X, y)
		di := dst.PixOffset(dst.Rect.Min.X, y)
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x, si, di = x+1, si+3, di+3 {
			p := fn(x, y, Pixel{src.Pix[si], src.Pix[si+1], src.Pix[si+2]})
			dst.Pix[di+0] = p.R
			dst.Pix[di+1] = p.G
			dst.Pix[di+2] = p.B
		}
	}

	if o.workers == 1 || src.Rect.Dy() < 2 {
		for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
			row(y)
		}
		return dst
	}

	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		eg.Go(func() error {
			row(y)
			return nil
		})
	}
	_ = eg.Wait() // rows never fail
	return dst
}
