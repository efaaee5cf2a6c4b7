package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWalletItemType_Color(t *testing.T) {
	tests := []struct {
		typ  WalletItemType
		want string
	}{
		{typ: WalletItemCredit, want: "from-blue-800 to-slate-900"},
		{typ: WalletItemID, want: "from-emerald-600 to-teal-800"},
		{typ: WalletItemLoyalty, want: "from-purple-600 to-indigo-800"},
		{typ: WalletItemMember, want: "from-red-600 to-red-900"},
		{typ: WalletItemOther, want: "from-blue-400 to-blue-600"},
		{typ: WalletItemType("passport"), want: DefaultItemColor},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Color())
		})
	}
}

func TestWalletItem_ApplyRecomputesColor(t *testing.T) {
	item := NewWalletItem("a", WalletItemDraft{Type: WalletItemCredit, Name: "Visa"})
	assert.Equal(t, WalletItemCredit.Color(), item.Color)

	item.Apply(WalletItemDraft{Type: WalletItemLoyalty, Name: "Coop"})
	assert.Equal(t, "a", item.ID)
	assert.Equal(t, "Coop", item.Name)
	assert.Equal(t, WalletItemLoyalty.Color(), item.Color)
}

func TestWalletItemDraft_Normalize(t *testing.T) {
	d := WalletItemDraft{Type: " Credit ", Name: "  Visa  ", SupportPhone: " +41 1 "}.Normalize()

	assert.Equal(t, WalletItemCredit, d.Type)
	assert.Equal(t, "Visa", d.Name)
	assert.Equal(t, "+41 1", d.SupportPhone)
}

func TestWalletItem_MaskedNumber(t *testing.T) {
	credit := &WalletItem{Type: WalletItemCredit, Number: "5412 3400 9910 2234"}
	assert.Equal(t, "•••• •••• •••• 2234", credit.MaskedNumber())

	id := &WalletItem{Type: WalletItemID, Number: "X1234567"}
	assert.Equal(t, "X1234567", id.MaskedNumber())
}

func TestTemperatureForDistance(t *testing.T) {
	tests := []struct {
		distance float64
		want     Temperature
	}{
		{distance: 0, want: TemperatureVeryHot},
		{distance: 0.5, want: TemperatureVeryHot},
		{distance: 1, want: TemperatureHot},
		{distance: 3, want: TemperatureHot},
		{distance: 5, want: TemperatureCold},
		{distance: 10, want: TemperatureCold},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TemperatureForDistance(tt.distance), "distance %v", tt.distance)
	}
}

func TestRoundDistance(t *testing.T) {
	assert.Equal(t, 0.5, RoundDistance(0.5))
	assert.Equal(t, 1.0, RoundDistance(0.96))
	assert.Equal(t, 1.2, RoundDistance(1.234))
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 46.1966, Lng: 9.0250}.IsValid())
	assert.True(t, Coordinate{Lat: -90, Lng: 180}.IsValid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lng: -181}.IsValid())
	assert.False(t, Coordinate{Lat: math.NaN(), Lng: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lng: math.Inf(1)}.IsValid())
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Lat: 46.1966, Lng: 9.0250}
	p := c.Point()

	assert.Equal(t, 9.0250, p.Lon())
	assert.Equal(t, 46.1966, p.Lat())
	assert.Equal(t, c, CoordinateFromPoint(p))
}

func TestCleanCitations(t *testing.T) {
	in := []Citation{
		{Title: "Polizia Cantonale", URI: "https://maps.google.com/?cid=1"},
		{Title: "  ", URI: ""},
		{URI: " https://example.ch "},
	}

	out := CleanCitations(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "https://example.ch", out[1].URI)
	assert.Empty(t, out[1].Title)
	assert.Nil(t, CleanCitations(nil))
}

func TestSettings_IsOutside(t *testing.T) {
	s := Settings{GeofenceEnabled: true, GeofenceRadius: 50}
	assert.False(t, s.IsOutside(50))
	assert.True(t, s.IsOutside(50.1))
	assert.Equal(t, 50.0, s.EffectiveRadius())

	s.GeofenceEnabled = false
	assert.False(t, s.IsOutside(1000))
	assert.Zero(t, s.EffectiveRadius())
}

func TestAudioClip_Duration(t *testing.T) {
	clip := &AudioClip{SampleRate: 24000, Channels: 1, Samples: make([]float32, 12000)}
	assert.Equal(t, 12000, clip.Frames())
	assert.Equal(t, 500*time.Millisecond, clip.Duration())

	var empty *AudioClip
	assert.Zero(t, empty.Duration())
}

func TestClampBattery(t *testing.T) {
	assert.Equal(t, 0, ClampBattery(-5))
	assert.Equal(t, 100, ClampBattery(140))
	assert.Equal(t, 92, ClampBattery(92))
}

func TestWalletEvent_Data(t *testing.T) {
	e := &WalletEvent{EventID: "e1", Type: EventGeofenceBreach, Location: Coordinate{Lat: 46.1966, Lng: 9.025}, Distance: 61.24}

	data := e.Data()
	assert.Equal(t, "geofence_breach", data["type"])
	assert.Equal(t, "46.196600", data["latitude"])
	assert.Equal(t, "61.2", data["distance"])
}
