package service

import (
	"math"
	"strconv"
)

const earthRadiusKm = 6371

// Distance computes the great-circle distance in kilometers between
// two points given as decimal-degree strings. A coordinate that fails
// to parse yields NaN, which every range comparison downstream treats
// as out of range.
func Distance(lat1, lon1, lat2, lon2 string) float64 {
	la1, err1 := strconv.ParseFloat(lat1, 64)
	lo1, err2 := strconv.ParseFloat(lon1, 64)
	la2, err3 := strconv.ParseFloat(lat2, 64)
	lo2, err4 := strconv.ParseFloat(lon2, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return math.NaN()
	}
	return haversine(la1, lo1, la2, lo2)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
