package main

import (
	"log"

	"quickbite/config"
	httpapi "quickbite/menu-svc/internal/api/http"
	"quickbite/menu-svc/internal/service"
	"quickbite/menu-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	restSvc := service.NewRestaurantService(repo)
	menuSvc := service.NewMenuService(repo)
	handler := httpapi.NewHandler(restSvc, menuSvc)

	httpapi.StartServer(config.Getenv("MENU_SVC_ADDR", ":8082"), httpapi.NewRouter(handler))
}
