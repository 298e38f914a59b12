package main

import (
	"context"
	"net/http"
	"time"

	httpapi "quickbite/cart-svc/internal/api/http"
	"quickbite/cart-svc/internal/remote"
	"quickbite/cart-svc/internal/service"
	"quickbite/cart-svc/internal/store"
	"quickbite/config"
)

func main() {
	bus := store.NewBus()

	dataDir := config.Getenv("CART_DATA_DIR", "./data")
	localStore := store.NewFileStore(dataDir, bus)

	client := remote.NewClient(
		config.Getenv("ACCOUNT_SVC_URL", "http://localhost:8084"),
		config.Getenv("ORDER_SVC_URL", "http://localhost:8083"),
		config.Getenv("SESSION_TOKEN", ""),
		&http.Client{Timeout: 10 * time.Second},
	)

	cartSvc := service.NewCartService(localStore, client)
	favoritesSvc := service.NewFavoritesService(localStore, client.ForFavorites())
	composer := service.NewComposer(cartSvc, client, client)

	sessionID := config.Getenv("SESSION_ID", "local")
	broadcaster := store.NewKafkaBroadcaster(config.NewKafkaWriter("cart-events"), sessionID)
	go broadcaster.Run(context.Background(), bus.Subscribe(16))

	handler := httpapi.NewHandler(cartSvc, favoritesSvc, composer)
	httpapi.StartServer(config.Getenv("CART_SVC_ADDR", ":8085"), httpapi.NewRouter(handler))
}
