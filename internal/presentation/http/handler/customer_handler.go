package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer and dining table HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create registers a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), a, &service.CreateCustomerInput{
		Name:      req.Name,
		Phone:     req.Phone,
		StateCode: req.StateCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// Get returns a customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// List returns the tenant's customers
func (h *CustomerHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved", customers)
}

// CreateTable registers a dining table
func (h *CustomerHandler) CreateTable(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateTableRequest
	if !bindJSON(c, &req) {
		return
	}

	table, err := h.customerService.CreateTable(c.Request.Context(), a, &service.CreateTableInput{
		Code:  req.Code,
		Zone:  req.Zone,
		Seats: req.Seats,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created", table)
}

// ListTables returns the branch's dining tables
func (h *CustomerHandler) ListTables(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	tables, err := h.customerService.ListTables(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved", tables)
}
