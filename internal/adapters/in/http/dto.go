package http

import (
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductRequest carries one product in a create or update request.
type ProductRequest struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"pricePerItem"`
}

// AllocationRequest carries one employee's products. An empty employeeId
// creates a draft allocation that is excluded from fee splitting.
type AllocationRequest struct {
	EmployeeID string           `json:"employeeId"`
	Products   []ProductRequest `json:"products"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Name        string              `json:"name"`
	DeliveryFee float64             `json:"deliveryFee"`
	Employees   []AllocationRequest `json:"employees"`
}

// UpdateOrderRequest is the body of PATCH /orders/:id. Absent fields are
// left unchanged.
type UpdateOrderRequest struct {
	Name        *string             `json:"name"`
	DeliveryFee *float64            `json:"deliveryFee"`
	Employees   []AllocationRequest `json:"employees"`
}

// UpdateLineItemRequest is the body of PATCH /line-items/:id. Absent fields
// are left unchanged.
type UpdateLineItemRequest struct {
	Name         *string  `json:"name"`
	Quantity     *int     `json:"quantity"`
	PricePerItem *float64 `json:"pricePerItem"`
}

// LineItemResponse is one row of the flattened per-product view.
type LineItemResponse struct {
	ID                     string    `json:"id"`
	OrderID                string    `json:"orderId"`
	OrderName              string    `json:"orderName"`
	OrderTimestamp         time.Time `json:"orderTimestamp"`
	EmployeeName           string    `json:"employeeName"`
	FoodItem               string    `json:"foodItem"`
	Quantity               int       `json:"quantity"`
	PricePerItem           float64   `json:"pricePerItem"`
	TotalPrice             float64   `json:"totalPrice"`
	DeliveryFee            float64   `json:"deliveryFee"`
	DeliveryFeePerEmployee float64   `json:"deliveryFeePerEmployee"`
	FinalTotal             float64   `json:"finalTotal"`
}

// EmployeeTotalResponse is one employee's totals across all orders.
type EmployeeTotalResponse struct {
	FoodTotal     float64 `json:"foodTotal"`
	DeliveryTotal float64 `json:"deliveryTotal"`
	GrandTotal    float64 `json:"grandTotal"`
}

// TotalsResponse is the body of GET /totals.
type TotalsResponse struct {
	Employees  map[string]EmployeeTotalResponse `json:"employees"`
	GrandTotal float64                          `json:"grandTotal"`
}

// EmployeeStatsResponse is one employee's consumption statistics.
type EmployeeStatsResponse struct {
	Items             int     `json:"items"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalQuantity     int     `json:"totalQuantity"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	AverageItemPrice  float64 `json:"averageItemPrice"`
}

// BackupResponse describes one stored backup without its payload.
type BackupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Items     int       `json:"items"`
	Version   string    `json:"version"`
}

// toAllocations converts request allocations into domain allocations,
// minting fresh product ids.
func toAllocations(requests []AllocationRequest) ([]*order.Allocation, error) {
	allocations := make([]*order.Allocation, 0, len(requests))
	for _, request := range requests {
		products := make([]*order.Product, 0, len(request.Products))
		for _, p := range request.Products {
			price, err := kernel.MoneyFromFloat(p.PricePerItem)
			if err != nil {
				return nil, err
			}

			product, err := order.NewProduct(kernel.NewUUID(), p.Name, p.Quantity, price)
			if err != nil {
				return nil, err
			}
			products = append(products, product)
		}

		allocation, err := order.NewAllocation(request.EmployeeID, products)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}

	return allocations, nil
}

func toLineItemResponse(item services.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                     item.ID.String(),
		OrderID:                item.OrderID.String(),
		OrderName:              item.OrderName,
		OrderTimestamp:         item.OrderTimestamp,
		EmployeeName:           item.EmployeeName,
		FoodItem:               item.FoodItem,
		Quantity:               item.Quantity,
		PricePerItem:           item.PricePerItem.Float64(),
		TotalPrice:             item.TotalPrice.Float64(),
		DeliveryFee:            item.DeliveryFee.Float64(),
		DeliveryFeePerEmployee: item.DeliveryFeePerEmployee.Float64(),
		FinalTotal:             item.FinalTotal.Float64(),
	}
}

func toBackupResponse(record ports.BackupRecord) BackupResponse {
	return BackupResponse{
		ID:        record.ID,
		Name:      record.Label,
		Timestamp: record.Timestamp,
		Items:     len(record.Data),
		Version:   record.Version,
	}
}
