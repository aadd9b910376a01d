package utils

// Administrative regions the platform operates in, keyed by the centroid of
// each metro area. A fix is attributed to the closest region within
// maxRegionDistanceM; anything farther is outside the service area.

const maxRegionDistanceM = 150000.0

var regionCentroids = map[string]GeoPoint{
	"jakarta":    {Latitude: -6.2088, Longitude: 106.8456},
	"bogor":      {Latitude: -6.5971, Longitude: 106.8060},
	"tangerang":  {Latitude: -6.1783, Longitude: 106.6319},
	"bekasi":     {Latitude: -6.2383, Longitude: 106.9756},
	"bandung":    {Latitude: -6.9175, Longitude: 107.6191},
	"semarang":   {Latitude: -6.9667, Longitude: 110.4167},
	"yogyakarta": {Latitude: -7.7956, Longitude: 110.3695},
	"surabaya":   {Latitude: -7.2575, Longitude: 112.7521},
	"denpasar":   {Latitude: -8.6705, Longitude: 115.2126},
	"medan":      {Latitude: 3.5952, Longitude: 98.6722},
	"palembang":  {Latitude: -2.9761, Longitude: 104.7754},
	"makassar":   {Latitude: -5.1477, Longitude: 119.4327},
}

// RegionFor returns the name of the administrative region containing the
// point, or an empty string when the point is outside every service area.
func RegionFor(point GeoPoint) string {
	region := ""
	closest := maxRegionDistanceM
	for name, centroid := range regionCentroids {
		if d := DistanceMeters(point, centroid); d <= closest {
			region = name
			closest = d
		}
	}
	return region
}

// IsKnownRegion reports whether the name is a recognized service region
func IsKnownRegion(name string) bool {
	_, ok := regionCentroids[name]
	return ok
}
