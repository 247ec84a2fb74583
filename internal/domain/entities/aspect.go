package entities

import "strings"

// Shared quality labels in canonical order.
const (
	QualitySamePolarity = "Same polarity"
	QualitySameElement  = "Same element"
	QualitySameModality = "Same modality"
	QualityNone         = "No shared qualities"
)

// QualityCombinations is every possible shared-qualities answer.
var QualityCombinations = []string{
	"Same polarity, Same element, Same modality",
	"Same polarity, Same element",
	"Same polarity, Same modality",
	"Same element, Same modality",
	"Same polarity",
	"Same element",
	"Same modality",
	"No shared qualities",
}

// Aspect is an angular relationship between two planets.
type Aspect struct {
	Name         string   `json:"name"`
	Degrees      int      `json:"degrees"`
	Relationship string   `json:"relationship"`
	Function     []string `json:"function"`
	SamePolarity bool     `json:"samePolarity"`
	SameElement  bool     `json:"sameElement"`
	SameModality bool     `json:"sameModality"`
	IsMajor      bool     `json:"isMajor"`
}

// SharedQualities describes which zodiacal qualities two signs share
// at this aspect's separation.
func (a Aspect) SharedQualities() string {
	qualities := make([]string, 0, 3)
	if a.SamePolarity {
		qualities = append(qualities, QualitySamePolarity)
	}
	if a.SameElement {
		qualities = append(qualities, QualitySameElement)
	}
	if a.SameModality {
		qualities = append(qualities, QualitySameModality)
	}

	if len(qualities) == 0 {
		return QualityNone
	}
	return strings.Join(qualities, ", ")
}
