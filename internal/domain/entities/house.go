package entities

import "strings"

// House type prefixes in canonical order.
var HouseTypes = []string{"Angular", "Succedent", "Cadent"}

// House is one of the twelve houses of a chart.
type House struct {
	Number          int      `json:"number"`
	PrimaryTopics   []string `json:"primaryTopics"`
	SecondaryTopics []string `json:"secondaryTopics"`
	Type            string   `json:"type"` // "Angular: ...", "Succedent: ..." or "Cadent: ..."
	ChartPoint      string   `json:"chartPoint,omitempty"`
}

// TypePrefix returns the house type prefix (Angular, Succedent or Cadent)
// and its index in HouseTypes, or -1 if the type is unrecognized.
func (h House) TypePrefix() (string, int) {
	for i, prefix := range HouseTypes {
		if strings.HasPrefix(h.Type, prefix) {
			return prefix, i
		}
	}
	return "", -1
}
