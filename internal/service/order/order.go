package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/pkg/logger"
)

// ExpiryGrace добавляется к окну подтверждения, чтобы не наказывать
// водителя за сетевые задержки на границе окна.
const ExpiryGrace = 5 * time.Minute

type Order struct {
	repository    Repository
	walletService WalletService
	tracking      TrackingService
	payments      PaymentGateway
	profiles      ProfileGateway
	scheduler     ExpiryScheduler
	notifier      Notifier
	txManager     TxManager
	pickupWindow  time.Duration
	log           logger.Logger
}

func New(
	repository Repository,
	walletService WalletService,
	tracking TrackingService,
	payments PaymentGateway,
	profiles ProfileGateway,
	scheduler ExpiryScheduler,
	notifier Notifier,
	txManager TxManager,
	pickupWindow time.Duration,
	log logger.Logger,
) *Order {
	return &Order{
		repository:    repository,
		walletService: walletService,
		tracking:      tracking,
		payments:      payments,
		profiles:      profiles,
		scheduler:     scheduler,
		notifier:      notifier,
		txManager:     txManager,
		pickupWindow:  pickupWindow,
		log:           log,
	}
}

// CreateFromBid создает заказ по принятой ставке. Вызывается внутри
// транзакции акцепта, поэтому сам транзакцию не открывает.
func (o *Order) CreateFromBid(ctx context.Context, load entities.Load, acceptedBid entities.Bid) (*entities.Order, error) {
	seq, err := o.repository.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next order number: %w", err)
	}

	now := time.Now().UTC()
	created, err := o.repository.Create(ctx, entities.Order{
		Number:    fmt.Sprintf("FR-%s-%06d", now.Format("20060102"), seq),
		LoadID:    load.ID,
		BidID:     acceptedBid.ID,
		CreatorID: load.CreatorID,
		DriverID:  acceptedBid.DriverID,
		Amount:    acceptedBid.Amount,
		Status:    entities.OrderBidAccepted,
		ExpiresAt: now.Add(o.pickupWindow + ExpiryGrace),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := o.repository.AssignDriverLoad(ctx, created.DriverID, load.ID); err != nil {
		return nil, fmt.Errorf("assign driver load: %w", err)
	}

	err = o.tracking.InitRoute(ctx, created.ID,
		entities.RoutePoint{Lat: load.OriginLat, Lon: load.OriginLon},
		entities.RoutePoint{Lat: load.DestinationLat, Lon: load.DestinationLon},
	)
	if err != nil {
		return nil, fmt.Errorf("init route tracking: %w", err)
	}

	return created, nil
}

// DriverAccept подтверждение заказа водителем. Снимает таймер истечения
// и просит создателя оплатить заказ.
func (o *Order) DriverAccept(ctx context.Context, actorID, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	var accepted *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		actor, err := o.profiles.GetActor(ctx, actorID)
		if err != nil {
			return fmt.Errorf("resolve actor: %w", err)
		}
		if actor.Role != entities.RoleAdmin {
			if !actor.Role.Can(entities.CapUpdateOrder) || current.DriverID != actorID {
				return ErrForbidden
			}
		}

		if current.Status.Terminal() {
			return ErrOrderTerminal
		}
		if !current.Status.CanTransition(entities.OrderDriverAccepted) {
			return ErrInvalidTransition
		}

		driverAccepted := entities.OrderDriverAccepted
		accepted, err = o.repository.Update(ctx, entities.OrderModify{ID: &orderID, Status: &driverAccepted})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// водитель подтвердился, окно истечения больше не действует
	o.scheduler.Cancel(orderID)

	if err := o.notifier.PaymentRequested(ctx, *accepted); err != nil {
		o.log.Warn("payment requested notification failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err.Error()),
		)
	}

	return accepted, nil
}

// AuthorizePayment авторизация оплаты создателем после подтверждения
// водителем. Повторный вызов возвращает уже существующий платеж, новой
// авторизации у провайдера не делает.
func (o *Order) AuthorizePayment(ctx context.Context, actorID, orderID int64) (*entities.Payment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	var payment *entities.Payment
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := o.checkCompleter(ctx, actorID, current); err != nil {
			return err
		}
		if current.Status.Terminal() {
			return ErrOrderTerminal
		}
		if current.Status == entities.OrderBidAccepted {
			return ErrAwaitingDriverAccept
		}

		existing, err := o.repository.GetPaymentForUpdate(ctx, orderID)
		switch {
		case err == nil:
			payment = existing
			return nil
		case !errors.Is(err, ErrPaymentNotFound):
			return fmt.Errorf("get payment: %w", err)
		}

		providerRef, err := o.payments.Authorize(ctx, current.Amount, current.Number)
		if err != nil {
			return fmt.Errorf("authorize payment: %w", err)
		}

		payment, err = o.repository.CreatePayment(ctx, entities.Payment{
			OrderID:     current.ID,
			ProviderRef: providerRef,
			Amount:      current.Amount,
			Status:      entities.PaymentAuthorized,
		})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ScheduleExpiry регистрирует таймер истечения. Таймер — быстрый путь,
// источником истины остается периодический обход просроченных заказов.
func (o *Order) ScheduleExpiry(order entities.Order) {
	o.scheduler.Schedule(order.ID, order.ExpiresAt)
}

func (o *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	found, err := o.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return found, nil
}

func (o *Order) UpdateStatus(ctx context.Context, actorID, orderID int64, to entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	switch to {
	case entities.OrderDriverAccepted:
		return o.DriverAccept(ctx, actorID, orderID)
	case entities.OrderPickedUp, entities.OrderInTransit, entities.OrderFailed:
	default:
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := o.checkStatusActor(ctx, actorID, current, to); err != nil {
			return err
		}
		if current.Status.Terminal() {
			return ErrOrderTerminal
		}
		if !current.Status.CanTransition(to) {
			return ErrInvalidTransition
		}

		updated, err = o.repository.Update(ctx, entities.OrderModify{ID: &orderID, Status: &to})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		switch to {
		case entities.OrderInTransit:
			if err := o.repository.SetLoadStatus(ctx, current.LoadID, entities.LoadInTransit); err != nil {
				return fmt.Errorf("update load status: %w", err)
			}
		case entities.OrderFailed:
			if err := o.failSideEffects(ctx, current); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// таймер живет только до подтверждения водителем, но провал из
	// bid_accepted обязан его снять
	if to == entities.OrderFailed {
		o.scheduler.Cancel(orderID)
	}

	if err := o.notifier.OrderStatusChanged(ctx, *updated); err != nil {
		o.log.Warn("order status notification failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err.Error()),
		)
	}

	return updated, nil
}

// Complete завершает заказ, списывает авторизованный платеж и раздает
// комиссии. Идемпотентен: повторный вызов по заказу с выполненной
// выплатой возвращает заказ без побочных эффектов.
func (o *Order) Complete(ctx context.Context, actorID, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	var (
		completed *entities.Order
		credits   []entities.CommissionCredit
	)
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		credits = nil

		current, err := o.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := o.checkCompleter(ctx, actorID, current); err != nil {
			return err
		}

		if current.PayoutDone {
			completed = current
			return nil
		}
		if current.Status != entities.OrderInTransit {
			return ErrCompletionNotInTransit
		}

		payment, err := o.repository.GetPaymentForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		if payment.Status != entities.PaymentAuthorized {
			return ErrPaymentNotFound
		}

		if err := o.payments.Capture(ctx, payment.ProviderRef); err != nil {
			return fmt.Errorf("%w: %s", ErrPaymentNotCaptured, err)
		}
		if err := o.repository.UpdatePaymentStatus(ctx, payment.ID, entities.PaymentCaptured); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		credits, err = o.walletService.DistributeOrderPayout(ctx, *current)
		if err != nil {
			return fmt.Errorf("distribute payout: %w", err)
		}

		completedStatus := entities.OrderCompleted
		payoutDone := true
		completed, err = o.repository.Update(ctx, entities.OrderModify{
			ID:         &orderID,
			Status:     &completedStatus,
			PayoutDone: &payoutDone,
		})
		if err != nil {
			return fmt.Errorf("complete order: %w", err)
		}

		if err := o.repository.SetLoadStatus(ctx, current.LoadID, entities.LoadDelivered); err != nil {
			return fmt.Errorf("update load status: %w", err)
		}
		if err := o.repository.ReleaseDriverLoad(ctx, current.DriverID, current.LoadID); err != nil {
			return fmt.Errorf("release driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.scheduler.Cancel(orderID)

	if len(credits) > 0 {
		if err := o.notifier.PayoutDistributed(ctx, *completed, credits); err != nil {
			o.log.Warn("payout notification failed",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err.Error()),
			)
		}
	}

	return completed, nil
}

// ExpireOrder обрабатывает срабатывание таймера. Опоздавший таймер по
// уже подтвержденному или закрытому заказу — штатный no-op.
func (o *Order) ExpireOrder(ctx context.Context, orderID int64) error {
	var expired *entities.ExpiredOrder
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		expired, err = o.repository.ExpireByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("expire order: %w", err)
		}
		if expired == nil {
			return nil
		}
		return o.expireSideEffects(ctx, *expired)
	})
	if err != nil {
		return err
	}
	if expired == nil {
		return nil
	}

	o.afterExpiry(ctx, *expired)
	return nil
}

// ExpireOverdue периодический обход: переводит все просроченные заказы
// в expired. Закрывает пропуски таймеров после рестарта процесса.
func (o *Order) ExpireOverdue(ctx context.Context) (int64, error) {
	var expiredOrders []entities.ExpiredOrder
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		expiredOrders, err = o.repository.ExpireOverdue(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("expire overdue orders: %w", err)
		}
		for _, expired := range expiredOrders {
			if err := o.expireSideEffects(ctx, expired); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, expired := range expiredOrders {
		o.afterExpiry(ctx, expired)
	}
	return int64(len(expiredOrders)), nil
}

// ResyncExpiryTimers восстанавливает таймеры по живым заказам после
// рестарта процесса.
func (o *Order) ResyncExpiryTimers(ctx context.Context) error {
	pending, err := o.repository.ListPendingExpiry(ctx)
	if err != nil {
		return fmt.Errorf("list pending expiry: %w", err)
	}
	for _, ord := range pending {
		o.scheduler.Schedule(ord.ID, ord.ExpiresAt)
	}
	return nil
}

// expireSideEffects откат назначения по истекшему заказу. Платежа тут
// быть не может: заказ истекает строго из bid_accepted, а авторизация
// открывается только после подтверждения водителем.
func (o *Order) expireSideEffects(ctx context.Context, expired entities.ExpiredOrder) error {
	if _, err := o.repository.ReopenLoad(ctx, expired.LoadID); err != nil {
		return fmt.Errorf("reopen load: %w", err)
	}

	// принятая ставка не должна быть принята повторно
	if err := o.repository.MarkBidRejected(ctx, expired.BidID); err != nil {
		return fmt.Errorf("reject accepted bid: %w", err)
	}
	if err := o.repository.ReleaseDriverLoad(ctx, expired.DriverID, expired.LoadID); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	return nil
}

func (o *Order) failSideEffects(ctx context.Context, current *entities.Order) error {
	if err := o.repository.SetLoadStatus(ctx, current.LoadID, entities.LoadCancelled); err != nil {
		return fmt.Errorf("cancel load: %w", err)
	}
	if err := o.repository.ReleaseDriverLoad(ctx, current.DriverID, current.LoadID); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}

	// до оплаты создателем платежа еще нет, это штатно
	payment, err := o.repository.GetPaymentForUpdate(ctx, current.ID)
	if errors.Is(err, ErrPaymentNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}
	if payment.Status == entities.PaymentAuthorized {
		if err := o.payments.Cancel(ctx, payment.ProviderRef); err != nil {
			return fmt.Errorf("cancel payment: %w", err)
		}
		if err := o.repository.UpdatePaymentStatus(ctx, payment.ID, entities.PaymentCancelled); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
	}
	return nil
}

func (o *Order) afterExpiry(ctx context.Context, expired entities.ExpiredOrder) {
	o.scheduler.Cancel(expired.OrderID)
	if err := o.notifier.OrderExpired(ctx, expired); err != nil {
		o.log.Warn("order expired notification failed",
			logger.NewField("order_id", expired.OrderID),
			logger.NewField("error", err.Error()),
		)
	}
}

func (o *Order) checkStatusActor(ctx context.Context, actorID int64, current *entities.Order, to entities.OrderStatusType) error {
	actor, err := o.profiles.GetActor(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolve actor: %w", err)
	}
	if actor.Role == entities.RoleAdmin {
		return nil
	}

	// провалить заказ может и создатель, и водитель
	if to == entities.OrderFailed && current.CreatorID == actorID {
		return nil
	}
	if !actor.Role.Can(entities.CapUpdateOrder) || current.DriverID != actorID {
		return ErrForbidden
	}
	return nil
}

func (o *Order) checkCompleter(ctx context.Context, actorID int64, current *entities.Order) error {
	actor, err := o.profiles.GetActor(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolve actor: %w", err)
	}
	if actor.Role == entities.RoleAdmin {
		return nil
	}
	if !actor.Role.Can(entities.CapCompleteOrder) || current.CreatorID != actorID {
		return ErrForbidden
	}
	return nil
}
