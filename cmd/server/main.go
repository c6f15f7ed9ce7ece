package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"store-service/internal/config"
	httpctrl "store-service/internal/controllers/http"
	"store-service/internal/infra/mysql"
	"store-service/internal/infra/rabbitmq"
	repomysql "store-service/internal/repository/mysql"
	"store-service/internal/services"
)

func main() {
	cfg := config.Load()

	db, err := mysql.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	orderRepo := repomysql.NewOrderRepository(db)
	productRepo := repomysql.NewProductRepository(db)
	ledgerRepo := repomysql.NewLedgerRepository(db)
	customerRepo := repomysql.NewCustomerRepository(db)

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Printf("rabbitmq unavailable, events disabled: %v", err)
		} else {
			publisher = pub
			defer pub.Close()
		}
	}

	orderSvc := services.NewOrderService(orderRepo, productRepo, ledgerRepo, publisher)
	productSvc := services.NewProductService(productRepo)
	stockSvc := services.NewStockService(productRepo, ledgerRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	authSvc := services.NewAuthService(cfg.PinCode)

	if rdb := config.NewRedisClient(cfg); rdb != nil {
		orderSvc.SetRedisClient(rdb)
		productSvc.SetRedisClient(rdb)
		stockSvc.SetRedisClient(rdb)
	} else {
		log.Println("redis unavailable, caching disabled")
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	handler := httpctrl.NewHandler(orderSvc, productSvc, stockSvc, customerSvc, authSvc)
	handler.RegisterRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
