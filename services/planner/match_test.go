package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesDestination(t *testing.T) {
	tests := []struct {
		name         string
		itemLocation string
		destination  string
		want         bool
	}{
		{"destination inside location", "Riyadh Region", "Riyadh", true},
		{"location inside destination", "Riyadh", "Riyadh Region", true},
		{"exact match", "Jeddah", "Jeddah", true},
		{"case insensitive", "RIYADH", "riyadh", true},
		{"whitespace trimmed", "  Riyadh  ", " Riyadh Region ", true},
		{"different cities", "Jeddah", "Riyadh", false},
		{"unknown location never matches", "", "Riyadh", false},
		{"empty destination never matches", "Riyadh", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDestination(tt.itemLocation, tt.destination))
		})
	}
}
