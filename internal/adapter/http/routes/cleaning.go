package routes

import (
	"home_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathCustomers = "/customers"
	PathRequests  = "/requests"
	PathQuotes    = "/quotes"
	PathOrders    = "/orders"
	PathBills     = "/bills"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, customerHandler *handlers.CustomerHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Register)
		customers.GET("/:id", customerHandler.GetByID)
	}
}

func addCleaningRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.ServiceOrderHandler,
	billHandler *handlers.BillHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Create)
		requests.PATCH("/photos", requestHandler.AttachPhoto)
		requests.GET("", requestHandler.ListAll)
		requests.GET("/:id", requestHandler.GetByID)
		requests.GET("/customer/:customer_id", requestHandler.ListByCustomer)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Issue)
		quotes.PATCH("/accept", quoteHandler.Accept)
		quotes.PATCH("/reject", quoteHandler.Reject)
		quotes.PATCH("/renegotiate", quoteHandler.Renegotiate)
		quotes.GET("", quoteHandler.ListAll)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.GET("/request/:request_id", quoteHandler.ListByRequest)
		quotes.GET("/customer/:customer_id", quoteHandler.ListByCustomer)
	}

	orders := rg.Group(PathOrders)
	{
		orders.PATCH("/complete", orderHandler.Complete)
		orders.GET("", orderHandler.ListAll)
		orders.GET("/:id", orderHandler.GetByID)
	}

	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.Create)
		bills.PATCH("/pay", billHandler.Pay)
		bills.PATCH("/dispute", billHandler.Dispute)
		bills.GET("", billHandler.ListAll)
		bills.GET("/:id", billHandler.GetByID)
	}
}
