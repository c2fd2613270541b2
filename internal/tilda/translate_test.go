package tilda

import (
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerkehrsriBikelanes(t *testing.T) {
	cases := []struct {
		oneway string
		want   string
	}{
		{"yes", VerkehrsriEinrichtung},
		{"no", VerkehrsriZweirichtung},
		{"car_not_bike", VerkehrsriZweirichtung},
		{"assumed_no", VerkehrsriTODOAssumed},
		{"implicit_yes", VerkehrsriTODOImplicit},
		{"", VerkehrsriTODOMissing},
	}
	for _, c := range cases {
		w := model.OSMWay{DataSource: model.SourceBikelanes, Oneway: c.oneway}
		assert.Equal(t, c.want, Verkehrsri(w), "oneway=%q", c.oneway)
	}
}

func TestVerkehrsriStreets(t *testing.T) {
	assert.Equal(t, VerkehrsriZweirichtung, Verkehrsri(model.OSMWay{DataSource: model.SourceStreets}))
	assert.Equal(t, VerkehrsriZweirichtung, Verkehrsri(model.OSMWay{DataSource: model.SourceStreets, Oneway: "yes", OnewayBike: "no"}))
	assert.Equal(t, VerkehrsriEinrichtung, Verkehrsri(model.OSMWay{DataSource: model.SourceStreets, Oneway: "yes"}))
	assert.Equal(t, VerkehrsriEinrichtung, Verkehrsri(model.OSMWay{DataSource: model.SourceStreets, Oneway: "yes_dual_carriageway"}))
	assert.Equal(t, VerkehrsriZweirichtung, Verkehrsri(model.OSMWay{DataSource: model.SourcePaths, Oneway: "no"}))
}

func TestFuehrStreetsAndPaths(t *testing.T) {
	assert.Equal(t, FuehrMischverkehr, Fuehr(model.OSMWay{DataSource: model.SourceStreets}))
	assert.Equal(t, FuehrSonstigeWegeLang, Fuehr(model.OSMWay{DataSource: model.SourcePaths}))
}

func TestFuehrBikelaneCategories(t *testing.T) {
	cases := []struct {
		category string
		sign     string
		want     string
	}{
		{"cyclewayOnHighway_exclusive", "", FuehrRadfahrstreifen},
		{"cyclewayOnHighwayBetweenLanes", "", FuehrRadfahrstreifen},
		{"sharedBusLaneBikeWithBus", "", FuehrLinienverkehrFrei},
		{"cyclewayOnHighwayProtected", "", FuehrGeschuetzterRFS},
		{"cyclewayOnHighway_advisory", "", FuehrSchutzstreifen},
		{"bicycleRoad", "", FuehrFahrradstrasse},
		{"bicycleRoad_vehicleDestination", "", FuehrFahrradstrasse},
		{"footAndCyclewayShared", "DE:240", FuehrGehUndRadwegZ240},
		{"footAndCyclewayShared", "", FuehrRadweg},
		{"footAndCyclewaySegregated", "", FuehrRadweg},
		{"cyclewaySeparated", "", FuehrRadweg},
		{"footwayBicycleYes", "DE:239;DE:1022-10", FuehrGehwegRadverkehrFrei},
		{"footwayBicycleYes", "", FuehrSonstigeWege},
		{"footwayBicycleYes", "DE:239", FuehrTODOGehwegOhneZeichen},
		{"pedestrianAreaBicycleYes", "DE:242;DE:1022-10", FuehrFussgaengerzone},
		{"crossing", "", FuehrTODOKreuzungsQuerung},
		{"needsClarification", "", FuehrTODOKlaerungNotwendig},
		{"somethingElse", "", FuehrTODOFuehrungFehlt},
	}
	for _, c := range cases {
		w := model.OSMWay{DataSource: model.SourceBikelanes, Category: c.category, TrafficSign: c.sign}
		assert.Equal(t, c.want, Fuehr(w), "category=%q sign=%q", c.category, c.sign)
	}
}

func TestPflicht(t *testing.T) {
	assert.True(t, Pflicht(model.OSMWay{DataSource: model.SourceBikelanes, TrafficSign: "DE:237"}))
	assert.False(t, Pflicht(model.OSMWay{DataSource: model.SourceBikelanes, TrafficSign: "DE:250"}))
	assert.False(t, Pflicht(model.OSMWay{DataSource: model.SourceStreets, TrafficSign: "DE:237"}))
}

func TestOFMMapping(t *testing.T) {
	assert.Equal(t, OFMAsphalt, OFM("asphalt", nil))
	assert.Equal(t, OFMBeton, OFM("concrete:plates", nil))
	assert.Equal(t, OFMTODOFehlt, OFM("", nil))
	assert.Equal(t, OFMNichtGefunden, OFM("quantum_foam", nil))
}

func TestProtekProtectedCategoryBollard(t *testing.T) {
	w := model.OSMWay{
		Category:    "cyclewayOnHighwayProtected",
		Separation:  map[string]string{"right": "bollard"},
		Marking:     map[string]string{},
		TrafficMode: map[string]string{},
	}
	assert.Equal(t, ProtekPoller, Protek(w))
}

func TestProtekUnprotectedCategory(t *testing.T) {
	assert.Equal(t, ProtekOhne, Protek(model.OSMWay{Category: "cyclewayOnHighway_advisory"}))
}

func TestTrennstreifenRightSideParkingWithBuffer(t *testing.T) {
	w := model.OSMWay{
		TrafficMode: map[string]string{"right": "parking"},
		Buffer:      map[string]float64{"right": 0.8},
	}
	assert.Equal(t, TrennstreifenJa, Trennstreifen(w))
}

func TestTrennstreifenNoParkingEntfaellt(t *testing.T) {
	w := model.OSMWay{TrafficMode: map[string]string{"right": "none"}}
	assert.Equal(t, TrennstreifenEntfaellt, Trennstreifen(w))
}

func TestNutzBeschr(t *testing.T) {
	assert.Equal(t, NutzBeschrKeine, NutzBeschr(model.OSMWay{}))
	assert.Contains(t, NutzBeschr(model.OSMWay{TrafficSign: "Gehwegschäden"}), "Schadensschild")
}

func TestParseWidth(t *testing.T) {
	cases := []struct {
		raw  string
		want *float64
	}{
		{"2.5", f(2.5)},
		{"2.5 m", f(2.5)},
		{"2;1.5", f(2)},
		{"not-a-number", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := ParseWidth(c.raw)
		if c.want == nil {
			assert.Nil(t, got, "raw=%q", c.raw)
		} else {
			require.NotNil(t, got, "raw=%q", c.raw)
			assert.InDelta(t, *c.want, *got, 1e-9, "raw=%q", c.raw)
		}
	}
}

func f(v float64) *float64 { return &v }
