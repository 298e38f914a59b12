package main

import (
	"time"

	"quickbite/config"
	httpapi "quickbite/order-svc/internal/api/http"
	"quickbite/order-svc/internal/service"
	"quickbite/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("order-events")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewStatusCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost")}

	orderSvc := service.NewOrderService(repo, cache, publisher, qr)
	handler := httpapi.NewHandler(orderSvc, cache)

	httpapi.StartServer(config.Getenv("ORDER_SVC_ADDR", ":8083"), httpapi.NewRouter(handler))
}
