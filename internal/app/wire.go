//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	profileGateway "freight/internal/gateway/http/profile"
	routingGateway "freight/internal/gateway/http/routing"
	stripeGateway "freight/internal/gateway/stripe"
	bid_accept_post "freight/internal/handlers/rest/bid_accept_post"
	bid_delete "freight/internal/handlers/rest/bid_delete"
	bid_reject_post "freight/internal/handlers/rest/bid_reject_post"
	bids_post "freight/internal/handlers/rest/bids_post"
	load_delete "freight/internal/handlers/rest/load_delete"
	load_get "freight/internal/handlers/rest/load_get"
	load_put "freight/internal/handlers/rest/load_put"
	loads_nearby_get "freight/internal/handlers/rest/loads_nearby_get"
	loads_post "freight/internal/handlers/rest/loads_post"
	loads_route_get "freight/internal/handlers/rest/loads_route_get"
	locations_post "freight/internal/handlers/rest/locations_post"
	order_complete_post "freight/internal/handlers/rest/order_complete_post"
	order_get "freight/internal/handlers/rest/order_get"
	order_payment_post "freight/internal/handlers/rest/order_payment_post"
	order_status_put "freight/internal/handlers/rest/order_status_put"
	order_track_get "freight/internal/handlers/rest/order_track_get"
	wallet_get "freight/internal/handlers/rest/wallet_get"
	wallet_withdraw_post "freight/internal/handlers/rest/wallet_withdraw_post"
	"freight/internal/handlers/tasks/order_expiry"
	"freight/internal/pkg/config"
	"freight/internal/pkg/expiry"
	"freight/internal/pkg/notify"
	"freight/internal/pkg/redisconn"
	"freight/internal/pkg/wshub"

	bidRepo "freight/internal/repository/bid"
	loadRepo "freight/internal/repository/load"
	matchRepo "freight/internal/repository/match"
	orderRepo "freight/internal/repository/order"
	trackingRepo "freight/internal/repository/tracking"
	walletRepo "freight/internal/repository/wallet"
	bidService "freight/internal/service/bid"
	loadService "freight/internal/service/load"
	matchService "freight/internal/service/match"
	orderService "freight/internal/service/order"
	trackingService "freight/internal/service/tracking"
	walletService "freight/internal/service/wallet"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	ExpirySweepInterval time.Duration
)

type Application struct {
	ServiceLoad       ServiceLoad
	ServiceBid        ServiceBid
	ServiceOrder      ServiceOrder
	ServiceWallet     ServiceWallet
	ServiceMatch      ServiceMatch
	ServiceTracking   ServiceTracking
	Hub               *wshub.Hub
	ExpiryTimers      *expiry.Registry
	BackgroundWorkers *background.Worker
}

type ServiceLoad interface {
	loads_post.Service
	load_put.Service
	load_get.Service
	load_delete.Service
}

type ServiceBid interface {
	bids_post.Service
	bid_accept_post.Service
	bid_reject_post.Service
	bid_delete.Service
}

type ServiceOrder interface {
	order_get.Service
	order_status_put.Service
	order_complete_post.Service
	order_payment_post.Service

	ExpireOrder(ctx context.Context, orderID int64) error
}

type ServiceWallet interface {
	wallet_get.Service
	wallet_withdraw_post.Service
}

type ServiceMatch interface {
	loads_nearby_get.Service
	loads_route_get.Service
}

type ServiceTracking interface {
	locations_post.Service
	order_track_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHTTPClient,
		provideExpirySweepInterval,

		provideLoadRepository,
		provideBidRepository,
		provideOrderRepository,
		provideWalletRepository,
		provideMatchRepository,
		provideTrackingRepository,

		provideProfileGateway,
		provideRoutingGateway,
		providePaymentGateway,
		provideNotifyDispatcher,
		provideLocationCache,
		provideHub,
		provideExpiryTimers,

		provideServiceLoad,
		provideServiceBid,
		provideServiceOrder,
		provideServiceWallet,
		provideServiceMatch,
		provideServiceTracking,

		provideOrderExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLoad), new(*loadService.Load)),
		wire.Bind(new(ServiceBid), new(*bidService.Bid)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),
		wire.Bind(new(ServiceMatch), new(*matchService.Match)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
		wire.Bind(new(bidService.Repository), new(*bidRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(matchService.Repository), new(*matchRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),

		wire.Bind(new(loadService.ProfileGateway), new(*profileGateway.ProfileGateway)),
		wire.Bind(new(bidService.ProfileGateway), new(*profileGateway.ProfileGateway)),
		wire.Bind(new(orderService.ProfileGateway), new(*profileGateway.ProfileGateway)),
		wire.Bind(new(walletService.ProfileGateway), new(*profileGateway.ProfileGateway)),
		wire.Bind(new(loadService.RoutingGateway), new(*routingGateway.RoutingGateway)),
		wire.Bind(new(trackingService.RoutingGateway), new(*routingGateway.RoutingGateway)),
		wire.Bind(new(orderService.PaymentGateway), new(*stripeGateway.PaymentGateway)),

		wire.Bind(new(loadService.Notifier), new(*notify.Dispatcher)),
		wire.Bind(new(bidService.Notifier), new(*notify.Dispatcher)),
		wire.Bind(new(orderService.Notifier), new(*notify.Dispatcher)),
		wire.Bind(new(trackingService.Notifier), new(*notify.Dispatcher)),

		wire.Bind(new(bidService.OrderService), new(*orderService.Order)),
		wire.Bind(new(orderService.WalletService), new(*walletService.Wallet)),
		wire.Bind(new(orderService.TrackingService), new(*trackingService.Tracking)),
		wire.Bind(new(orderService.ExpiryScheduler), new(*expiry.Registry)),
		wire.Bind(new(trackingService.LocationCache), new(*redisconn.LocationCache)),
		wire.Bind(new(trackingService.Broadcaster), new(*wshub.Hub)),

		wire.Bind(new(loadService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bidService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_expiry.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceTracking *trackingService.Tracking
	Hub             *wshub.Hub
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-location-ingest)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHTTPClient,

		provideTrackingRepository,
		provideRoutingGateway,
		provideNotifyDispatcher,
		provideLocationCache,
		provideHub,
		provideServiceTracking,

		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(trackingService.RoutingGateway), new(*routingGateway.RoutingGateway)),
		wire.Bind(new(trackingService.Notifier), new(*notify.Dispatcher)),
		wire.Bind(new(trackingService.LocationCache), new(*redisconn.LocationCache)),
		wire.Bind(new(trackingService.Broadcaster), new(*wshub.Hub)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Server.RequestTimeout}
}

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideBidRepository(querier *querier.Querier) *bidRepo.Repository {
	return bidRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideMatchRepository(querier *querier.Querier) *matchRepo.Repository {
	return matchRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideProfileGateway(client *http.Client, cfg *config.Config) *profileGateway.ProfileGateway {
	return profileGateway.New(client, cfg.Gateways.ProfileBaseURL)
}

func provideRoutingGateway(client *http.Client, cfg *config.Config) *routingGateway.RoutingGateway {
	return routingGateway.New(client, cfg.Gateways.RoutingBaseURL)
}

func providePaymentGateway(cfg *config.Config) *stripeGateway.PaymentGateway {
	return stripeGateway.New(cfg.Gateways.StripeAPIKey, cfg.Gateways.StripeCurrency)
}

func provideNotifyDispatcher(producer sarama.SyncProducer, cfg *config.Config) *notify.Dispatcher {
	return notify.New(producer, cfg.Kafka.EventsTopic)
}

func provideLocationCache(redisClient *redis.Client, cfg *config.Config) *redisconn.LocationCache {
	return redisconn.NewLocationCache(redisClient, cfg.Redis.TTL)
}

func provideHub(log logger.Logger) *wshub.Hub {
	return wshub.New(log)
}

func provideExpiryTimers(log logger.Logger) *expiry.Registry {
	return expiry.New(log)
}

func provideServiceLoad(
	repository loadService.Repository,
	profiles loadService.ProfileGateway,
	routing loadService.RoutingGateway,
	notifier loadService.Notifier,
	txManager loadService.TxManager,
	log logger.Logger,
) *loadService.Load {
	return loadService.New(repository, profiles, routing, notifier, txManager, log)
}

func provideServiceBid(
	repository bidService.Repository,
	orderSvc bidService.OrderService,
	profiles bidService.ProfileGateway,
	notifier bidService.Notifier,
	txManager bidService.TxManager,
	log logger.Logger,
) *bidService.Bid {
	return bidService.New(repository, orderSvc, profiles, notifier, txManager, log)
}

func provideServiceOrder(
	repository orderService.Repository,
	walletSvc orderService.WalletService,
	tracking orderService.TrackingService,
	payments orderService.PaymentGateway,
	profiles orderService.ProfileGateway,
	scheduler orderService.ExpiryScheduler,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
	cfg *config.Config,
	log logger.Logger,
) *orderService.Order {
	return orderService.New(
		repository,
		walletSvc,
		tracking,
		payments,
		profiles,
		scheduler,
		notifier,
		txManager,
		cfg.Orders.PickupWindow,
		log,
	)
}

func provideServiceWallet(
	repository walletService.Repository,
	profiles walletService.ProfileGateway,
	txManager walletService.TxManager,
	log logger.Logger,
) *walletService.Wallet {
	return walletService.New(repository, profiles, txManager, log)
}

func provideServiceMatch(repository matchService.Repository) *matchService.Match {
	return matchService.New(repository)
}

func provideServiceTracking(
	repository trackingService.Repository,
	cache trackingService.LocationCache,
	routing trackingService.RoutingGateway,
	hub trackingService.Broadcaster,
	notifier trackingService.Notifier,
	txManager trackingService.TxManager,
	log logger.Logger,
) *trackingService.Tracking {
	return trackingService.New(repository, cache, routing, hub, notifier, txManager, log)
}

func provideExpirySweepInterval(cfg *config.Config) ExpirySweepInterval {
	return ExpirySweepInterval(cfg.Tasks.OrderExpirySweepInterval)
}

func provideOrderExpiryTask(
	log logger.Logger,
	orderSvc order_expiry.Service,
	interval ExpirySweepInterval,
) *order_expiry.OrderExpiry {
	return order_expiry.NewOrderExpiry(log, orderSvc, time.Duration(interval))
}

func provideTaskList(
	orderExpiryTask *order_expiry.OrderExpiry,
) []background.Task {
	return []background.Task{
		orderExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
