package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iburimskiy/rain-visualization/internal/raster"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

// pngSurface hands out one canvas per frame and writes every presented
// frame after the first skip ones to dir. Once limit frames are written, or
// a write fails, it stops handing out the canvas and closes Done.
type pngSurface struct {
	canvas *raster.Canvas
	dir    string
	skip   int
	limit  int

	mu       sync.Mutex
	frame    int
	written  int
	err      error
	done     chan struct{}
	doneOnce sync.Once
}

func newPNGSurface(canvas *raster.Canvas, dir string, skip, limit int) *pngSurface {
	return &pngSurface{
		canvas: canvas,
		dir:    dir,
		skip:   skip,
		limit:  limit,
		done:   make(chan struct{}),
	}
}

func (s *pngSurface) Lock() (rain.Canvas, int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil || s.written >= s.limit {
		return nil, 0, 0, false
	}
	return s.canvas, s.canvas.Width(), s.canvas.Height(), true
}

func (s *pngSurface) Unlock(rain.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame++
	if s.frame <= s.skip {
		return
	}
	if err := s.write(filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", s.written))); err != nil {
		s.err = err
		s.finish()
		return
	}
	s.written++
	if s.written >= s.limit {
		s.finish()
	}
}

func (s *pngSurface) write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (s *pngSurface) finish() { s.doneOnce.Do(func() { close(s.done) }) }

func (s *pngSurface) Done() <-chan struct{} { return s.done }

func (s *pngSurface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
