package expiry

import (
	"context"
	"sync"
	"time"

	"freight/pkg/logger"
)

// ExpireFunc вызывается при срабатывании таймера заказа.
type ExpireFunc func(ctx context.Context, orderID int64) error

// Registry in-memory таймеры истечения заказов. Быстрый путь поверх
// фоновой развёртки: потеря таймера при рестарте не теряет истечение,
// развёртка по базе его доберёт.
type Registry struct {
	log logger.Logger

	mu     sync.Mutex
	timers map[int64]*time.Timer

	ctx    context.Context
	expire ExpireFunc
}

func New(log logger.Logger) *Registry {
	return &Registry{
		log:    log,
		timers: make(map[int64]*time.Timer),
	}
}

// Run привязывает контекст и колбэк истечения. Размыкает цикл
// зависимостей: реестр передаётся сервису заказов до того, как
// сам сервис готов принимать колбэки.
func (r *Registry) Run(ctx context.Context, expire ExpireFunc) {
	r.mu.Lock()
	r.ctx = ctx
	r.expire = expire
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.stopAll()
	}()
}

// Schedule ставит таймер на момент истечения заказа. Повторный вызов
// для того же заказа переставляет таймер.
func (r *Registry) Schedule(orderID int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.timers[orderID]; ok {
		prev.Stop()
	}

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	r.timers[orderID] = time.AfterFunc(delay, func() {
		r.fire(orderID)
	})
}

// Cancel снимает таймер заказа, если он есть.
func (r *Registry) Cancel(orderID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[orderID]; ok {
		t.Stop()
		delete(r.timers, orderID)
	}
}

func (r *Registry) fire(orderID int64) {
	r.mu.Lock()
	delete(r.timers, orderID)
	ctx, expire := r.ctx, r.expire
	r.mu.Unlock()

	if ctx == nil || expire == nil {
		r.log.Warn("expiry timer fired before registry start",
			logger.NewField("order_id", orderID),
		)
		return
	}
	if ctx.Err() != nil {
		return
	}

	if err := expire(ctx, orderID); err != nil {
		// Заказ мог истечь развёрткой или перейти в работу, это не сбой.
		r.log.Warn("order expiry timer callback failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
	}
}

func (r *Registry) stopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}
