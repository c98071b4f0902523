package tui

import (
	"io/fs"
	"os"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// StatFunc resolves a candidate-entered file path into name and size. The
// default uses the local filesystem; tests supply a fake.
type StatFunc func(path string) (name string, size int64, err error)

func osStat(path string) (string, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	return info.Name(), info.Size(), nil
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithStatFunc overrides how file answers are resolved into name and size.
func WithStatFunc(stat StatFunc) Option {
	return func(r *Renderer) {
		if stat != nil {
			r.stat = stat
		}
	}
}

// WithFileFS restricts file answers to a filesystem, mostly for tests.
func WithFileFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys == nil {
			return
		}
		r.stat = func(path string) (string, int64, error) {
			info, err := fs.Stat(fsys, path)
			if err != nil {
				return "", 0, err
			}
			return info.Name(), info.Size(), nil
		}
	}
}
