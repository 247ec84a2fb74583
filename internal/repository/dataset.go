package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

var ErrInvalidDataset = errors.New("invalid dataset")

//go:embed data/astrology.json
var embeddedDataset []byte

// Dataset is the read-only collection of planets, signs, houses and aspects
// that quiz questions are generated from. It is loaded once and never mutated.
type Dataset struct {
	planets []entities.Planet
	signs   []entities.Sign
	houses  []entities.House
	aspects []entities.Aspect
}

// NewDataset loads the dataset compiled into the binary, or the JSON file
// at path when path is not empty.
func NewDataset(path string) (*Dataset, error) {
	data := embeddedDataset
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
	}

	return ParseDataset(data)
}

// ParseDataset decodes and validates a JSON dataset.
func ParseDataset(data []byte) (*Dataset, error) {
	var wrapper struct {
		Planets []entities.Planet `json:"planets"`
		Signs   []entities.Sign   `json:"signs"`
		Houses  []entities.House  `json:"houses"`
		Aspects []entities.Aspect `json:"aspects"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset JSON: %w", err)
	}

	ds := &Dataset{
		planets: wrapper.Planets,
		signs:   wrapper.Signs,
		houses:  wrapper.Houses,
		aspects: wrapper.Aspects,
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// Planets returns all planets.
func (d *Dataset) Planets() []entities.Planet { return d.planets }

// Signs returns all signs.
func (d *Dataset) Signs() []entities.Sign { return d.signs }

// Houses returns all houses.
func (d *Dataset) Houses() []entities.House { return d.houses }

// Aspects returns all aspects.
func (d *Dataset) Aspects() []entities.Aspect { return d.aspects }

func (d *Dataset) validate() error {
	if len(d.planets)+len(d.signs)+len(d.houses)+len(d.aspects) == 0 {
		return fmt.Errorf("%w: dataset is empty", ErrInvalidDataset)
	}

	seen := make(map[string]bool)
	for _, p := range d.planets {
		if p.Name == "" || seen[p.Name] {
			return fmt.Errorf("%w: duplicate or empty planet name %q", ErrInvalidDataset, p.Name)
		}
		seen[p.Name] = true
	}

	seen = make(map[string]bool)
	for _, s := range d.signs {
		if s.Name == "" || seen[s.Name] {
			return fmt.Errorf("%w: duplicate or empty sign name %q", ErrInvalidDataset, s.Name)
		}
		seen[s.Name] = true

		if !contains(entities.Polarities, s.Polarity) {
			return fmt.Errorf("%w: sign %s has unknown polarity %q", ErrInvalidDataset, s.Name, s.Polarity)
		}
		if !contains(entities.Elements, s.Element) {
			return fmt.Errorf("%w: sign %s has unknown element %q", ErrInvalidDataset, s.Name, s.Element)
		}
		if !contains(entities.Modalities, s.Modality) {
			return fmt.Errorf("%w: sign %s has unknown modality %q", ErrInvalidDataset, s.Name, s.Modality)
		}
	}

	numbers := make(map[int]bool)
	for _, h := range d.houses {
		if h.Number < 1 || h.Number > 12 || numbers[h.Number] {
			return fmt.Errorf("%w: invalid or duplicate house number %d", ErrInvalidDataset, h.Number)
		}
		numbers[h.Number] = true

		if _, idx := h.TypePrefix(); idx < 0 {
			return fmt.Errorf("%w: house %d has unknown type %q", ErrInvalidDataset, h.Number, h.Type)
		}
	}

	seen = make(map[string]bool)
	for _, a := range d.aspects {
		if a.Name == "" || seen[a.Name] {
			return fmt.Errorf("%w: duplicate or empty aspect name %q", ErrInvalidDataset, a.Name)
		}
		seen[a.Name] = true

		if a.Degrees < 0 || a.Degrees > 180 {
			return fmt.Errorf("%w: aspect %s has %d degrees", ErrInvalidDataset, a.Name, a.Degrees)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
