package predict

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const ArtifactName = "price_pipeline.yaml"

var ErrArtifactNotFound = errors.New("model artifact not found")

// LazyPipeline loads its artifact on first use and keeps it for the lifetime of
// the process. A failed load is kept as well; every later call returns the same
// error.
type LazyPipeline struct {
	candidates []string

	once     sync.Once
	path     string
	pipeline *Pipeline
	err      error
}

// NewLazyPipeline uses path when it is set, otherwise it searches SearchPaths.
func NewLazyPipeline(path string) *LazyPipeline {
	candidates := SearchPaths(ArtifactName)
	if path != "" {
		candidates = []string{path}
	}

	return &LazyPipeline{
		candidates: candidates,
	}
}

// SearchPaths lists where an artifact called name is looked for: next to the
// executable first, then in the working directory.
func SearchPaths(name string) []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), name))
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, name))
	}
	return paths
}

// Path reports the artifact that was loaded. It is empty until the first
// successful lookup.
func (l *LazyPipeline) Path() string {
	if _, err := l.load(); err != nil {
		return ""
	}
	return l.path
}

func (l *LazyPipeline) Warm() error {
	_, err := l.load()
	return err
}

func (l *LazyPipeline) Estimate(ctx context.Context, features Features) (float64, error) {
	pipeline, err := l.load()
	if err != nil {
		return 0, err
	}
	return pipeline.Estimate(ctx, features)
}

func (l *LazyPipeline) load() (*Pipeline, error) {
	l.once.Do(func() {
		l.path, l.err = locate(l.candidates)
		if l.err != nil {
			return
		}
		l.pipeline, l.err = LoadArtifact(l.path)
	})
	return l.pipeline, l.err
}

func locate(candidates []string) (string, error) {
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrArtifactNotFound, strings.Join(candidates, ", "))
}
