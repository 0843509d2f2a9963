package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"hris/internal/table"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

var ErrFixtureNotFound = errors.New("fixture not found")

type document struct {
	Records []map[string]any `yaml:"records"`
}

// Simulated serves embedded fixtures after a fixed delay, standing in for a
// remote API. Every call decodes a fresh copy.
type Simulated struct {
	Delay time.Duration
	files fs.FS
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay, files: fixtures}
}

func (s *Simulated) Load(ctx context.Context, name string) ([]table.Record, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	raw, err := fs.ReadFile(s.files, "fixtures/"+name+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
		}
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	records := make([]table.Record, 0, len(doc.Records))
	for _, item := range doc.Records {
		records = append(records, table.Record(normalize(item).(map[string]any)))
	}
	return records, nil
}

// Names lists the available fixtures.
func (s *Simulated) Names() ([]string, error) {
	matches, err := fs.Glob(s.files, "fixtures/*.yaml")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		base := match[len("fixtures/"):]
		names = append(names, base[:len(base)-len(".yaml")])
	}
	return names, nil
}

func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
