package bid

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Bid struct {
	repository   Repository
	orderService OrderService
	profiles     ProfileGateway
	notifier     Notifier
	txManager    TxManager
	log          logger.Logger
}

func New(
	repository Repository,
	orderService OrderService,
	profiles ProfileGateway,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Bid {
	return &Bid{
		repository:   repository,
		orderService: orderService,
		profiles:     profiles,
		notifier:     notifier,
		txManager:    txManager,
		log:          log,
	}
}

func (b *Bid) PlaceBid(ctx context.Context, actorID, loadID int64, amount entities.Money, comment string) (*entities.Bid, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	actor, err := b.profiles.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}
	if !actor.Role.Can(entities.CapPlaceBid) {
		return nil, ErrForbidden
	}

	var placed *entities.Bid
	err = b.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := b.repository.GetLoadForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}
		if !load.Status.Open() {
			return ErrLoadClosed
		}

		driver, err := b.repository.GetDriver(ctx, actorID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		// занятый водитель ограничен остатком грузоподъемности
		if driver.AvailableCapacityKg() < load.WeightKg {
			return ErrInsufficientCapacity
		}
		if !load.AcceptsVehicle(driver.VehicleType) {
			return ErrVehicleMismatch
		}

		placed, err = b.repository.Create(ctx, entities.BidModify{Amount: &amount}, loadID, actorID, comment)
		if err != nil {
			return fmt.Errorf("create bid: %w", err)
		}

		loadModify := entities.LoadModify{ID: &loadID}
		if load.Status == entities.LoadPosted {
			biddingStatus := entities.LoadBidding
			loadModify.Status = &biddingStatus
		}
		if load.LowestBidAmount == nil || amount < *load.LowestBidAmount {
			loadModify.LowestBidAmount = &amount
		}
		if loadModify.Status != nil || loadModify.LowestBidAmount != nil {
			if err := b.repository.UpdateLoad(ctx, loadModify); err != nil {
				return fmt.Errorf("update load: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := b.notifier.BidPlaced(ctx, *placed); err != nil {
		b.log.Warn("bid placed notification failed",
			logger.NewField("bid_id", placed.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return placed, nil
}

// AcceptBid принимает ставку от имени создателя загруза. Под блокировкой
// строки загруза допускается ровно один акцепт: повторная попытка любой
// другой ставки завершится ErrLoadAlreadyAssigned.
func (b *Bid) AcceptBid(ctx context.Context, actorID, bidID int64) (*entities.Order, error) {
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}

	var (
		accepted *entities.Bid
		order    *entities.Order
	)
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}

		load, err := b.repository.GetLoadForUpdate(ctx, current.LoadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := b.checkDecider(ctx, actorID, load); err != nil {
			return err
		}
		if load.AcceptedBidID != nil {
			return ErrLoadAlreadyAssigned
		}
		if !load.Status.Open() {
			return ErrLoadClosed
		}
		if current.Status != entities.BidPending {
			return ErrBidAlreadyDecided
		}

		accepted, err = b.repository.UpdateStatus(ctx, bidID, entities.BidAccepted)
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}

		if _, err := b.repository.RejectPendingByLoad(ctx, load.ID, bidID); err != nil {
			return fmt.Errorf("reject remaining bids: %w", err)
		}

		assignedStatus := entities.LoadAssigned
		err = b.repository.UpdateLoad(ctx, entities.LoadModify{
			ID:            &load.ID,
			Status:        &assignedStatus,
			AcceptedBidID: &bidID,
		})
		if err != nil {
			return fmt.Errorf("assign load: %w", err)
		}

		order, err = b.orderService.CreateFromBid(ctx, *load, *accepted)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// таймер истечения только после коммита, иначе он может сработать
	// по еще не видимому заказу
	b.orderService.ScheduleExpiry(*order)

	if err := b.notifier.BidAccepted(ctx, *accepted, *order); err != nil {
		b.log.Warn("bid accepted notification failed",
			logger.NewField("bid_id", accepted.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return order, nil
}

func (b *Bid) RejectBid(ctx context.Context, actorID, bidID int64) (*entities.Bid, error) {
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}

	var rejected *entities.Bid
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}

		load, err := b.repository.GetLoadForUpdate(ctx, current.LoadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := b.checkDecider(ctx, actorID, load); err != nil {
			return err
		}
		if current.Status != entities.BidPending {
			return ErrBidAlreadyDecided
		}

		rejected, err = b.repository.UpdateStatus(ctx, bidID, entities.BidRejected)
		if err != nil {
			return fmt.Errorf("reject bid: %w", err)
		}

		if err := b.repository.RecomputeLowestBid(ctx, load.ID); err != nil {
			return fmt.Errorf("recompute lowest bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := b.notifier.BidRejected(ctx, *rejected); err != nil {
		b.log.Warn("bid rejected notification failed",
			logger.NewField("bid_id", rejected.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return rejected, nil
}

// WithdrawBid отзыв собственной ставки до решения по ней. Строка ставки
// удаляется целиком, минимум по загрузу пересчитывается.
func (b *Bid) WithdrawBid(ctx context.Context, actorID, bidID int64) error {
	if bidID <= 0 {
		return ErrInvalidBidID
	}

	return b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if current.DriverID != actorID {
			return ErrForbidden
		}

		if _, err := b.repository.GetLoadForUpdate(ctx, current.LoadID); err != nil {
			return fmt.Errorf("get load: %w", err)
		}
		if current.Status != entities.BidPending {
			return ErrBidAlreadyDecided
		}

		if err := b.repository.Delete(ctx, bidID); err != nil {
			return fmt.Errorf("withdraw bid: %w", err)
		}

		if err := b.repository.RecomputeLowestBid(ctx, current.LoadID); err != nil {
			return fmt.Errorf("recompute lowest bid: %w", err)
		}
		return nil
	})
}

func (b *Bid) checkDecider(ctx context.Context, actorID int64, load *entities.Load) error {
	actor, err := b.profiles.GetActor(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolve actor: %w", err)
	}
	if actor.Role == entities.RoleAdmin {
		return nil
	}
	if !actor.Role.Can(entities.CapDecideBid) || load.CreatorID != actorID {
		return ErrForbidden
	}
	return nil
}
