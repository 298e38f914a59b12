package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"quickbite/api-gateway/internal/gateway"
	"quickbite/config"
)

func main() {
	gwConfig := gateway.Config{
		CartSvcURL:     config.Getenv("CART_SVC_URL", "http://localhost:8085"),
		OrderSvcURL:    config.Getenv("ORDER_SVC_URL", "http://localhost:8083"),
		MenuSvcURL:     config.Getenv("MENU_SVC_URL", "http://localhost:8082"),
		ActivitySvcURL: config.Getenv("ACTIVITY_SVC_URL", "http://localhost:8086"),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := config.Getenv("GATEWAY_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
