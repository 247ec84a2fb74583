// Package entities contains domain entities used across the application.
package entities

// Planet is a celestial body with its archetypes, needs and sign relationships.
// Relationship lists hold sign names; a nil list means the relationship does
// not apply to the planet.
type Planet struct {
	Name        string   `json:"name"`
	Archetypes  []string `json:"archetypes"`
	Needs       []string `json:"needs"`
	Descriptors []string `json:"descriptors,omitempty"`
	Domicile    []string `json:"domicile,omitempty"`
	Exaltation  []string `json:"exaltation,omitempty"`
	Detriment   []string `json:"detriment,omitempty"`
	Fall        []string `json:"fall,omitempty"`
}

// IsLuminary reports whether the planet is the Sun or the Moon.
func (p Planet) IsLuminary() bool {
	return p.Name == "Sun" || p.Name == "Moon"
}
