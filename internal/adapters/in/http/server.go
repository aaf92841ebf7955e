// Package http exposes the accounting engine over a JSON API.
package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/export"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/usecases/commands"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/usecases/queries"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	updateLineItemHandler commands.UpdateLineItemCommandHandler
	deleteLineItemHandler commands.DeleteLineItemCommandHandler
	clearOrdersHandler    commands.ClearOrdersCommandHandler
	importOrdersHandler   commands.ImportOrdersCommandHandler
	restoreBackupHandler  commands.RestoreBackupCommandHandler
	deleteBackupHandler   commands.DeleteBackupCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getLineItemsHandler      queries.GetLineItemsQueryHandler
	getEmployeeTotalsHandler queries.GetEmployeeTotalsQueryHandler
	getEmployeeStatsHandler  queries.GetEmployeeStatsQueryHandler
	listEmployeesHandler     queries.ListEmployeesQueryHandler
	listBackupsHandler       queries.ListBackupsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	updateLineItemHandler commands.UpdateLineItemCommandHandler,
	deleteLineItemHandler commands.DeleteLineItemCommandHandler,
	clearOrdersHandler commands.ClearOrdersCommandHandler,
	importOrdersHandler commands.ImportOrdersCommandHandler,
	restoreBackupHandler commands.RestoreBackupCommandHandler,
	deleteBackupHandler commands.DeleteBackupCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getLineItemsHandler queries.GetLineItemsQueryHandler,
	getEmployeeTotalsHandler queries.GetEmployeeTotalsQueryHandler,
	getEmployeeStatsHandler queries.GetEmployeeStatsQueryHandler,
	listEmployeesHandler queries.ListEmployeesQueryHandler,
	listBackupsHandler queries.ListBackupsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		updateLineItemHandler:    updateLineItemHandler,
		deleteLineItemHandler:    deleteLineItemHandler,
		clearOrdersHandler:       clearOrdersHandler,
		importOrdersHandler:      importOrdersHandler,
		restoreBackupHandler:     restoreBackupHandler,
		deleteBackupHandler:      deleteBackupHandler,
		listOrdersHandler:        listOrdersHandler,
		getLineItemsHandler:      getLineItemsHandler,
		getEmployeeTotalsHandler: getEmployeeTotalsHandler,
		getEmployeeStatsHandler:  getEmployeeStatsHandler,
		listEmployeesHandler:     listEmployeesHandler,
		listBackupsHandler:       listBackupsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders", s.ClearOrders)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/line-items", s.GetLineItems)
	api.PATCH("/line-items/:id", s.UpdateLineItem)
	api.DELETE("/line-items/:id", s.DeleteLineItem)

	api.GET("/totals", s.GetTotals)
	api.GET("/stats", s.GetStats)
	api.GET("/employees", s.ListEmployees)

	api.GET("/export", s.ExportJSON)
	api.GET("/export/csv", s.ExportCSV)
	api.POST("/import", s.ImportOrders)

	api.GET("/backups", s.ListBackups)
	api.POST("/backups/:id/restore", s.RestoreBackup)
	api.DELETE("/backups/:id", s.DeleteBackup)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	snapshots, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	fee, err := kernel.MoneyFromFloat(request.DeliveryFee)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	allocations, err := toAllocations(request.Employees)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(request.Name, fee, allocations)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, created.ToSnapshot())
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var fee *kernel.Money
	if request.DeliveryFee != nil {
		money, feeErr := kernel.MoneyFromFloat(*request.DeliveryFee)
		if feeErr != nil {
			return s.badRequest(ctx, feeErr.Error())
		}
		fee = &money
	}

	var allocations []*order.Allocation
	if request.Employees != nil {
		allocations, err = toAllocations(request.Employees)
		if err != nil {
			return s.badRequest(ctx, err.Error())
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(id, request.Name, fee, allocations)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated.ToSnapshot())
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearOrders handles DELETE /api/v1/orders.
func (s *Server) ClearOrders(ctx echo.Context) error {
	cmd := commands.NewClearOrdersCommand()
	if err := s.clearOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLineItems handles GET /api/v1/line-items.
func (s *Server) GetLineItems(ctx echo.Context) error {
	items, err := s.getLineItemsHandler.Handle(ctx.Request().Context(), queries.NewGetLineItemsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toLineItemResponse(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateLineItem handles PATCH /api/v1/line-items/:id.
func (s *Server) UpdateLineItem(ctx echo.Context) error {
	id, err := kernel.ParseLineItemID(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid line item id")
	}

	var request UpdateLineItemRequest
	if err = ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var price *kernel.Money
	if request.PricePerItem != nil {
		money, priceErr := kernel.MoneyFromFloat(*request.PricePerItem)
		if priceErr != nil {
			return s.badRequest(ctx, priceErr.Error())
		}
		price = &money
	}

	cmd, err := commands.NewUpdateLineItemCommand(id, request.Name, request.Quantity, price)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.updateLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLineItem handles DELETE /api/v1/line-items/:id.
func (s *Server) DeleteLineItem(ctx echo.Context) error {
	id, err := kernel.ParseLineItemID(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid line item id")
	}

	cmd, err := commands.NewDeleteLineItemCommand(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTotals handles GET /api/v1/totals.
func (s *Server) GetTotals(ctx echo.Context) error {
	result, err := s.getEmployeeTotalsHandler.Handle(ctx.Request().Context(), queries.NewGetEmployeeTotalsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	employees := make(map[string]EmployeeTotalResponse, len(result.Totals))
	for name, total := range result.Totals {
		employees[name] = EmployeeTotalResponse{
			FoodTotal:     total.FoodTotal.Float64(),
			DeliveryTotal: total.DeliveryTotal.Float64(),
			GrandTotal:    total.GrandTotal.Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, TotalsResponse{
		Employees:  employees,
		GrandTotal: result.GrandTotal.Float64(),
	})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.getEmployeeStatsHandler.Handle(ctx.Request().Context(), queries.NewGetEmployeeStatsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make(map[string]EmployeeStatsResponse, len(stats))
	for name, stat := range stats {
		response[name] = EmployeeStatsResponse{
			Items:             len(stat.Items),
			TotalAmount:       stat.TotalAmount.Float64(),
			TotalQuantity:     stat.TotalQuantity,
			OrderCount:        stat.OrderCount,
			AverageOrderValue: stat.AverageOrderValue().Float64(),
			AverageItemPrice:  stat.AverageItemPrice().Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListEmployees handles GET /api/v1/employees.
func (s *Server) ListEmployees(ctx echo.Context) error {
	names, err := s.listEmployeesHandler.Handle(ctx.Request().Context(), queries.NewListEmployeesQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, names)
}

// ExportJSON handles GET /api/v1/export.
func (s *Server) ExportJSON(ctx echo.Context) error {
	snapshots, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	document, err := export.JSON(snapshots)
	if err != nil {
		return s.renderError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="food-orders.json"`)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, document)
}

// ExportCSV handles GET /api/v1/export/csv.
func (s *Server) ExportCSV(ctx echo.Context) error {
	items, err := s.getLineItemsHandler.Handle(ctx.Request().Context(), queries.NewGetLineItemsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="food-orders.csv"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().WriteHeader(http.StatusOK)
	return export.CSV(ctx.Response(), items)
}

// ImportOrders handles POST /api/v1/import. The body is an exported JSON
// document; the whole collection is replaced.
func (s *Server) ImportOrders(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return s.badRequest(ctx, "Cannot read request body")
	}

	snapshots, err := export.ParseJSON(body)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewImportOrdersCommand(snapshots)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.importOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"imported": len(snapshots)})
}

// ListBackups handles GET /api/v1/backups.
func (s *Server) ListBackups(ctx echo.Context) error {
	records, err := s.listBackupsHandler.Handle(ctx.Request().Context(), queries.NewListBackupsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]BackupResponse, 0, len(records))
	for _, record := range records {
		response = append(response, toBackupResponse(record))
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestoreBackup handles POST /api/v1/backups/:id/restore.
func (s *Server) RestoreBackup(ctx echo.Context) error {
	cmd, err := commands.NewRestoreBackupCommand(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.restoreBackupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteBackup handles DELETE /api/v1/backups/:id.
func (s *Server) DeleteBackup(ctx echo.Context) error {
	cmd, err := commands.NewDeleteBackupCommand(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteBackupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// renderError maps domain errors onto HTTP statuses.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: fmt.Sprintf("Internal error: %v", err),
		})
	}
}
