// Package seed loads campus datasets from YAML or JSON documents.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/model"
)

//go:embed default.yaml
var defaultSeed []byte

// Data mirrors the portal's datasets.
type Data struct {
	Companies    []model.Company       `yaml:"companies" json:"companies"`
	Students     []model.PlacedStudent `yaml:"students" json:"students"`
	Rankings     []model.Ranking       `yaml:"rankings" json:"rankings"`
	Awards       []model.Award         `yaml:"awards" json:"awards"`
	Achievements []model.Achievement   `yaml:"achievements" json:"achievements"`
	Clubs        []model.Club          `yaml:"clubs" json:"clubs"`
}

// Parse decodes a seed document. JSON input is accepted since it is valid YAML.
// Unknown keys are rejected, as they are for dataset uploads. An empty
// document yields empty datasets.
func Parse(b []byte) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return d, nil
}

// LoadFile reads and parses the seed document at path.
func LoadFile(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrReadSeed, err)
	}
	return Parse(b)
}

// Default returns the embedded seed data.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// Apply replaces every dataset with the seed contents. A dataset that fails
// validation keeps its previous snapshot; the others are still applied.
func Apply(ctx context.Context, ds *repository.Datasets, d Data) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	_, err := ds.Companies.Replace(ctx, d.Companies)
	collect(err)
	_, err = ds.Students.Replace(ctx, d.Students)
	collect(err)
	_, err = ds.Rankings.Replace(ctx, d.Rankings)
	collect(err)
	_, err = ds.Awards.Replace(ctx, d.Awards)
	collect(err)
	_, err = ds.Achievements.Replace(ctx, d.Achievements)
	collect(err)
	_, err = ds.Clubs.Replace(ctx, d.Clubs)
	collect(err)
	return errors.Join(errs...)
}
