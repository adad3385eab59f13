package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPairKeyOrderIndependent(t *testing.T) {
	assert.Equal(t, MatchPairKey("a", "b"), MatchPairKey("b", "a"))
	assert.Equal(t, "a:b", MatchPairKey("b", "a"))
}

func TestMatchPartner(t *testing.T) {
	m := Match{UserA: "a", UserB: "b"}
	assert.Equal(t, "b", m.Partner("a"))
	assert.Equal(t, "a", m.Partner("b"))
}

func TestGeoPointAccessors(t *testing.T) {
	p := NewGeoPoint(37.60, 55.75)
	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, 37.60, p.Longitude())
	assert.Equal(t, 55.75, p.Latitude())

	var empty GeoPoint
	assert.Zero(t, empty.Longitude())
	assert.Zero(t, empty.Latitude())
}
