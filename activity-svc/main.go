package main

import (
	"context"

	httpapi "quickbite/activity-svc/internal/api/http"
	"quickbite/activity-svc/internal/service"
	"quickbite/activity-svc/internal/storage"
	"quickbite/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	cartReader := config.NewKafkaReader("cart-events", "activity-svc")
	defer cartReader.Close()
	orderReader := config.NewKafkaReader("order-events", "activity-svc")
	defer orderReader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(cartReader, orderReader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)
	httpapi.StartServer(config.Getenv("ACTIVITY_SVC_ADDR", ":8086"), httpapi.NewRouter(handler))
}
