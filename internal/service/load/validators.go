package load

func isValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLon(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func isValidPoint(lat, lon float64) bool {
	return isValidLat(lat) && isValidLon(lon)
}

func isValidVehicleType(v string) bool {
	switch v {
	case "any", "van", "truck", "semi":
		return true
	default:
		return false
	}
}
