package entities

// Polarities, elements and modalities in canonical order.
var (
	Polarities = []string{"Diurnal", "Nocturnal"}
	Elements   = []string{"Fire", "Earth", "Air", "Water"}
	Modalities = []string{"Cardinal", "Fixed", "Mutable"}
)

// Sign is a zodiac sign. Relationship lists hold planet names.
type Sign struct {
	Name        string   `json:"name"`
	Polarity    string   `json:"polarity"`
	Element     string   `json:"element"`
	Modality    string   `json:"modality"`
	Descriptors []string `json:"descriptors"`
	Needs       []string `json:"needs"`
	Domicile    []string `json:"domicile,omitempty"`
	Exaltation  []string `json:"exaltation,omitempty"`
	Detriment   []string `json:"detriment,omitempty"`
	Fall        []string `json:"fall,omitempty"`
}

// Ruler returns the first domicile planet of the sign.
func (s Sign) Ruler() (string, bool) {
	if len(s.Domicile) == 0 || s.Domicile[0] == "" {
		return "", false
	}
	return s.Domicile[0], true
}

// Categories returns "Polarity, Element, Modality" for the sign.
func (s Sign) Categories() string {
	return s.Polarity + ", " + s.Element + ", " + s.Modality
}
