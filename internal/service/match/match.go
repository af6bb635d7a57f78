package match

import (
	"context"
	"fmt"
	"sort"

	"freight/internal/entities"
	"freight/pkg/geo"
)

// RouteResultLimit предел выдачи в режиме обратной загрузки.
const RouteResultLimit = 20

type Match struct {
	repository Repository
}

func New(repository Repository) *Match {
	return &Match{repository: repository}
}

// NearbyLoads открытые загрузы с точкой погрузки в радиусе radiusKm от
// позиции водителя. Граница радиуса включается. Загрузы тяжелее
// свободной грузоподъемности водителя или с чужим типом транспорта
// отбрасываются.
func (m *Match) NearbyLoads(ctx context.Context, driverID int64, lat, lon, radiusKm float64) ([]entities.MatchedLoad, error) {
	if !isValidPoint(lat, lon) {
		return nil, ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		return nil, ErrInvalidRadius
	}

	driver, err := m.repository.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	loads, err := m.repository.ListOpenLoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open loads: %w", err)
	}

	position := geo.Point{Lat: lat, Lon: lon}
	matched := make([]entities.MatchedLoad, 0, len(loads))
	for _, load := range loads {
		if !driverFits(*driver, load) {
			continue
		}

		distance := geo.DistanceKm(position, geo.Point{Lat: load.OriginLat, Lon: load.OriginLon})
		if distance > radiusKm {
			continue
		}

		matched = append(matched, entities.MatchedLoad{
			Load:             load,
			OriginDistanceKm: distance,
		})
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OriginDistanceKm < matched[j].OriginDistanceKm
	})
	return matched, nil
}

// RouteLoads подбор обратной загрузки: водитель едет из from в to, ищем
// открытые загрузы, у которых погрузка лежит в радиусе от его старта, а
// выгрузка — в радиусе от его финиша. Ранжирование по сумме двух
// отклонений. Приближение коридора прямой линией, без построения
// фактического маршрута.
func (m *Match) RouteLoads(ctx context.Context, driverID int64, from, to entities.RoutePoint, maxDeviationKm float64) ([]entities.MatchedLoad, error) {
	if !isValidPoint(from.Lat, from.Lon) || !isValidPoint(to.Lat, to.Lon) {
		return nil, ErrInvalidCoordinates
	}
	if maxDeviationKm <= 0 {
		return nil, ErrInvalidRadius
	}

	driver, err := m.repository.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	loads, err := m.repository.ListOpenLoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open loads: %w", err)
	}

	fromPoint := geo.Point{Lat: from.Lat, Lon: from.Lon}
	toPoint := geo.Point{Lat: to.Lat, Lon: to.Lon}

	matched := make([]entities.MatchedLoad, 0, len(loads))
	for _, load := range loads {
		if !driverFits(*driver, load) {
			continue
		}

		originDeviation := geo.DistanceKm(fromPoint, geo.Point{Lat: load.OriginLat, Lon: load.OriginLon})
		destinationDeviation := geo.DistanceKm(toPoint, geo.Point{Lat: load.DestinationLat, Lon: load.DestinationLon})
		// каждое плечо проверяется отдельно, сумма только ранжирует
		if originDeviation > maxDeviationKm || destinationDeviation > maxDeviationKm {
			continue
		}

		matched = append(matched, entities.MatchedLoad{
			Load:             load,
			OriginDistanceKm: originDeviation,
			DeviationKm:      originDeviation + destinationDeviation,
		})
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].DeviationKm < matched[j].DeviationKm
	})
	if len(matched) > RouteResultLimit {
		matched = matched[:RouteResultLimit]
	}
	return matched, nil
}

func driverFits(driver entities.Driver, load entities.Load) bool {
	if driver.AvailableCapacityKg() < load.WeightKg {
		return false
	}
	return load.AcceptsVehicle(driver.VehicleType)
}
