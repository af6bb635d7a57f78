package load

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/pkg/geo"
	"freight/pkg/logger"
)

type Load struct {
	repository Repository
	profiles   ProfileGateway
	routing    RoutingGateway
	notifier   Notifier
	txManager  TxManager
	log        logger.Logger
}

func New(
	repository Repository,
	profiles ProfileGateway,
	routing RoutingGateway,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Load {
	return &Load{
		repository: repository,
		profiles:   profiles,
		routing:    routing,
		notifier:   notifier,
		txManager:  txManager,
		log:        log,
	}
}

func (l *Load) CreateLoad(ctx context.Context, actorID int64, loadModify entities.LoadModify) (*entities.Load, error) {
	actor, err := l.profiles.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}
	if !actor.Role.Can(entities.CapPostLoad) {
		return nil, ErrForbidden
	}

	if err := validateCreate(loadModify); err != nil {
		return nil, err
	}

	distance := l.routeDistance(ctx,
		entities.RoutePoint{Lat: *loadModify.OriginLat, Lon: *loadModify.OriginLon},
		entities.RoutePoint{Lat: *loadModify.DestinationLat, Lon: *loadModify.DestinationLon},
	)

	status := entities.DefaultLoadStatus
	loadModify.CreatorID = &actorID
	loadModify.Status = &status
	loadModify.DistanceKm = &distance

	created, err := l.repository.Create(ctx, loadModify)
	if err != nil {
		return nil, fmt.Errorf("create load: %w", err)
	}

	if err := l.notifier.LoadPosted(ctx, *created); err != nil {
		l.log.Warn("load posted notification failed",
			logger.NewField("load_id", created.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return created, nil
}

func (l *Load) UpdateLoad(ctx context.Context, actorID int64, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.ID == nil || *loadModify.ID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if err := validateUpdate(loadModify); err != nil {
		return nil, err
	}

	var updated *entities.Load
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := l.repository.GetByIDForUpdate(ctx, *loadModify.ID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := l.checkOwnership(ctx, actorID, current); err != nil {
			return err
		}
		if !current.Status.Open() {
			return ErrLoadNotEditable
		}

		// смена геометрии пересчитывает дистанцию
		if loadModify.OriginLat != nil || loadModify.OriginLon != nil ||
			loadModify.DestinationLat != nil || loadModify.DestinationLon != nil {
			origin := entities.RoutePoint{Lat: current.OriginLat, Lon: current.OriginLon}
			destination := entities.RoutePoint{Lat: current.DestinationLat, Lon: current.DestinationLon}
			if loadModify.OriginLat != nil {
				origin.Lat = *loadModify.OriginLat
			}
			if loadModify.OriginLon != nil {
				origin.Lon = *loadModify.OriginLon
			}
			if loadModify.DestinationLat != nil {
				destination.Lat = *loadModify.DestinationLat
			}
			if loadModify.DestinationLon != nil {
				destination.Lon = *loadModify.DestinationLon
			}
			distance := l.routeDistance(ctx, origin, destination)
			loadModify.DistanceKm = &distance
		}

		updated, err = l.repository.Update(ctx, loadModify)
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (l *Load) DeleteLoad(ctx context.Context, actorID, id int64) error {
	if id <= 0 {
		return ErrInvalidLoadID
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := l.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := l.checkOwnership(ctx, actorID, current); err != nil {
			return err
		}
		if !current.Status.Open() {
			return ErrLoadNotEditable
		}

		bidCount, err := l.repository.CountBids(ctx, id)
		if err != nil {
			return fmt.Errorf("count bids: %w", err)
		}
		if bidCount > 0 {
			return ErrLoadHasBids
		}

		if err := l.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete load: %w", err)
		}
		return nil
	})
}

func (l *Load) GetLoad(ctx context.Context, id int64) (*entities.Load, error) {
	if id <= 0 {
		return nil, ErrInvalidLoadID
	}

	found, err := l.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}
	return found, nil
}

func (l *Load) checkOwnership(ctx context.Context, actorID int64, current *entities.Load) error {
	actor, err := l.profiles.GetActor(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolve actor: %w", err)
	}
	if actor.Role == entities.RoleAdmin {
		return nil
	}
	if !actor.Role.Can(entities.CapManageLoad) || current.CreatorID != actorID {
		return ErrForbidden
	}
	return nil
}

// routeDistance расстояние по маршруту от шлюза маршрутизации;
// при его недоступности — по прямой.
func (l *Load) routeDistance(ctx context.Context, origin, destination entities.RoutePoint) float64 {
	plan, err := l.routing.Route(ctx, origin, destination)
	if err != nil {
		l.log.Warn("routing gateway unavailable, falling back to straight-line distance",
			logger.NewField("error", err.Error()),
		)
		return geo.DistanceKm(
			geo.Point{Lat: origin.Lat, Lon: origin.Lon},
			geo.Point{Lat: destination.Lat, Lon: destination.Lon},
		)
	}
	return plan.DistanceKm
}

func validateCreate(m entities.LoadModify) error {
	if m.OriginLat == nil || m.OriginLon == nil ||
		m.DestinationLat == nil || m.DestinationLon == nil ||
		m.CargoType == nil || m.WeightKg == nil || m.Price == nil {
		return ErrMissingRequiredFields
	}
	if !isValidPoint(*m.OriginLat, *m.OriginLon) ||
		!isValidPoint(*m.DestinationLat, *m.DestinationLon) {
		return ErrInvalidCoordinates
	}
	if *m.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if *m.Price <= 0 {
		return ErrInvalidPrice
	}
	if m.VehicleTypes != nil {
		for _, v := range *m.VehicleTypes {
			if !isValidVehicleType(v.String()) {
				return ErrInvalidVehicleType
			}
		}
	}
	return nil
}

func validateUpdate(m entities.LoadModify) error {
	if m.OriginLat != nil && !isValidLat(*m.OriginLat) {
		return ErrInvalidCoordinates
	}
	if m.OriginLon != nil && !isValidLon(*m.OriginLon) {
		return ErrInvalidCoordinates
	}
	if m.DestinationLat != nil && !isValidLat(*m.DestinationLat) {
		return ErrInvalidCoordinates
	}
	if m.DestinationLon != nil && !isValidLon(*m.DestinationLon) {
		return ErrInvalidCoordinates
	}
	if m.WeightKg != nil && *m.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if m.Price != nil && *m.Price <= 0 {
		return ErrInvalidPrice
	}
	if m.VehicleTypes != nil {
		for _, v := range *m.VehicleTypes {
			if !isValidVehicleType(v.String()) {
				return ErrInvalidVehicleType
			}
		}
	}
	return nil
}
