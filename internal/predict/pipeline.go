package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"
)

var ErrInvalidArtifact = errors.New("invalid model artifact")

// Artifact is the serialized form of a trained pipeline: an ordered feature
// schema, a linear regressor over the numeric columns and per-level
// contributions for the one-hot encoded categorical columns.
type Artifact struct {
	Name      string                        `yaml:"name"`
	Intercept float64                       `yaml:"intercept"`
	Floor     float64                       `yaml:"floor"`
	Columns   []Column                      `yaml:"columns"`
	Weights   map[string]float64            `yaml:"weights"`
	Levels    map[string]map[string]float64 `yaml:"levels"`
}

type Pipeline struct {
	name      string
	schema    Schema
	intercept float64
	floor     float64
	weights   map[string]float64
	levels    map[string]map[string]float64
}

func NewPipeline(artifact Artifact) (*Pipeline, error) {
	if len(artifact.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns declared", ErrInvalidArtifact)
	}

	kinds := make(map[string]Kind, len(artifact.Columns))
	for _, col := range artifact.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column without a name", ErrInvalidArtifact)
		}
		if _, dup := kinds[col.Name]; dup {
			return nil, fmt.Errorf("%w: column %q declared twice", ErrInvalidArtifact, col.Name)
		}
		if col.Kind != Numeric && col.Kind != Categorical {
			return nil, fmt.Errorf("%w: column %q has unknown kind %q", ErrInvalidArtifact, col.Name, col.Kind)
		}
		kinds[col.Name] = col.Kind
	}

	for name := range artifact.Weights {
		if kinds[name] != Numeric {
			return nil, fmt.Errorf("%w: weight for %q which is not a numeric column", ErrInvalidArtifact, name)
		}
	}
	for name := range artifact.Levels {
		if kinds[name] != Categorical {
			return nil, fmt.Errorf("%w: levels for %q which is not a categorical column", ErrInvalidArtifact, name)
		}
	}

	if artifact.Floor < 0 {
		return nil, fmt.Errorf("%w: negative floor %v", ErrInvalidArtifact, artifact.Floor)
	}

	return &Pipeline{
		name:      artifact.Name,
		schema:    Schema(artifact.Columns),
		intercept: artifact.Intercept,
		floor:     artifact.Floor,
		weights:   artifact.Weights,
		levels:    artifact.Levels,
	}, nil
}

// LoadArtifact reads and decodes a YAML pipeline artifact from path.
func LoadArtifact(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var artifact Artifact
	if err := yaml.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w: %w", path, err, ErrInvalidArtifact)
	}

	pipeline, err := NewPipeline(artifact)
	if err != nil {
		return nil, fmt.Errorf("build pipeline from %s: %w", path, err)
	}
	return pipeline, nil
}

func (p *Pipeline) Name() string {
	return p.name
}

func (p *Pipeline) Schema() Schema {
	return p.schema
}

// Predict scores an aligned row. Unknown categorical levels contribute nothing and
// the result never drops below the artifact floor.
func (p *Pipeline) Predict(row Row) float64 {
	price := p.intercept
	for _, cell := range row {
		switch cell.Column.Kind {
		case Numeric:
			price += p.weights[cell.Column.Name] * cell.Number
		case Categorical:
			price += p.levels[cell.Column.Name][cell.Level]
		}
	}

	if math.IsNaN(price) {
		return p.floor
	}
	return math.Max(price, p.floor)
}

func (p *Pipeline) Estimate(_ context.Context, features Features) (float64, error) {
	if err := features.Validate(); err != nil {
		return 0, err
	}

	return finitePrice(p.Predict(Align(p.schema, features.Values())))
}
