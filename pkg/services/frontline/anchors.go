package frontline

import "github.com/de-tools/war-atlas/pkg/models/domain"

// Rear reference points appended, in this order, after a front's line.
var (
	EasternAnchors = []domain.Anchor{
		{Name: "Odessa", Latitude: 46.47747, Longitude: 30.73262},
		{Name: "Sevastopol", Latitude: 44.58883, Longitude: 33.5224},
		{Name: "Kerch", Latitude: 45.3607, Longitude: 36.4706},
		{Name: "Mariupol", Latitude: 47.09514, Longitude: 37.54131},
		{Name: "Luhansk", Latitude: 48.56705, Longitude: 39.31706},
		{Name: "Vovchansk", Latitude: 50.29078, Longitude: 36.94108},
	}

	NorthernAnchors = []domain.Anchor{
		{Name: "Dobryanka", Latitude: 52.0601, Longitude: 31.1837},
		{Name: "Hremyach", Latitude: 52.3332, Longitude: 33.2891},
		{Name: "Seredyna", Latitude: 52.1837, Longitude: 34.0412},
	}
)

func DefaultAnchors() map[domain.Front][]domain.Anchor {
	return map[domain.Front][]domain.Anchor{
		domain.FrontNorthern: NorthernAnchors,
		domain.FrontEastern:  EasternAnchors,
	}
}
