// Package geo предоставляет расчеты расстояний по сфере (формула гаверсинусов)
// и вспомогательные операции над полилиниями маршрутов.
package geo

import "math"

// EarthRadiusKm средний радиус Земли в километрах.
const EarthRadiusKm = 6371.0

// Point точка на поверхности в градусах.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm возвращает расстояние между двумя точками в километрах
// по формуле гаверсинусов.
func DistanceKm(a, b Point) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// PolylineLengthKm суммарная длина полилинии. Для менее чем двух точек
// возвращает 0.
func PolylineLengthKm(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1], points[i])
	}
	return total
}

// NearestVertex возвращает индекс ближайшей к p вершины полилинии
// и расстояние до нее. Для пустой полилинии возвращает (-1, 0).
func NearestVertex(points []Point, p Point) (int, float64) {
	if len(points) == 0 {
		return -1, 0
	}

	bestIdx := 0
	bestDist := DistanceKm(points[0], p)
	for i := 1; i < len(points); i++ {
		d := DistanceKm(points[i], p)
		if d < bestDist {
			bestIdx, bestDist = i, d
		}
	}

	return bestIdx, bestDist
}

// DistanceAlongKm длина полилинии от начала до вершины idx включительно.
func DistanceAlongKm(points []Point, idx int) float64 {
	if idx <= 0 || len(points) == 0 {
		return 0
	}
	if idx >= len(points) {
		idx = len(points) - 1
	}

	var total float64
	for i := 1; i <= idx; i++ {
		total += DistanceKm(points[i-1], points[i])
	}
	return total
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
