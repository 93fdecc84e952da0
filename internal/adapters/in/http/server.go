// Package http exposes the logistics use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
)

// Server holds the command and query handlers backing each route.
type Server struct {
	createShipmentHandler  commands.CreateShipmentCommandHandler
	appendStatusHandler    commands.AppendStatusCommandHandler
	createReturnHandler    commands.CreateReturnCommandHandler
	advanceReturnHandler   commands.AdvanceReturnCommandHandler
	createMethodHandler    commands.CreateShippingMethodCommandHandler
	createWarehouseHandler commands.CreateWarehouseCommandHandler
	createEmployeeHandler  commands.CreateEmployeeCommandHandler
	recordMovementHandler  commands.RecordMovementCommandHandler

	getShipmentHandler        queries.GetShipmentQueryHandler
	getShipmentHistoryHandler queries.GetShipmentHistoryQueryHandler
	getCurrentStatusHandler   queries.GetCurrentStatusQueryHandler
	getReturnHandler          queries.GetReturnQueryHandler
	listShipmentsHandler      queries.ListShipmentsQueryHandler
	listOverdueHandler        queries.ListOverdueShipmentsQueryHandler
	listReturnsHandler        queries.ListReturnsQueryHandler
	listMethodsHandler        queries.ListShippingMethodsQueryHandler
	listWarehousesHandler     queries.ListWarehousesQueryHandler
	listEmployeesHandler      queries.ListEmployeesQueryHandler
	listMovementsHandler      queries.ListMovementsQueryHandler
}

// Handlers bundles everything a Server needs.
type Handlers struct {
	CreateShipment  commands.CreateShipmentCommandHandler
	AppendStatus    commands.AppendStatusCommandHandler
	CreateReturn    commands.CreateReturnCommandHandler
	AdvanceReturn   commands.AdvanceReturnCommandHandler
	CreateMethod    commands.CreateShippingMethodCommandHandler
	CreateWarehouse commands.CreateWarehouseCommandHandler
	CreateEmployee  commands.CreateEmployeeCommandHandler
	RecordMovement  commands.RecordMovementCommandHandler

	GetShipment        queries.GetShipmentQueryHandler
	GetShipmentHistory queries.GetShipmentHistoryQueryHandler
	GetCurrentStatus   queries.GetCurrentStatusQueryHandler
	GetReturn          queries.GetReturnQueryHandler
	ListShipments      queries.ListShipmentsQueryHandler
	ListOverdue        queries.ListOverdueShipmentsQueryHandler
	ListReturns        queries.ListReturnsQueryHandler
	ListMethods        queries.ListShippingMethodsQueryHandler
	ListWarehouses     queries.ListWarehousesQueryHandler
	ListEmployees      queries.ListEmployeesQueryHandler
	ListMovements      queries.ListMovementsQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createShipmentHandler:  h.CreateShipment,
		appendStatusHandler:    h.AppendStatus,
		createReturnHandler:    h.CreateReturn,
		advanceReturnHandler:   h.AdvanceReturn,
		createMethodHandler:    h.CreateMethod,
		createWarehouseHandler: h.CreateWarehouse,
		createEmployeeHandler:  h.CreateEmployee,
		recordMovementHandler:  h.RecordMovement,

		getShipmentHandler:        h.GetShipment,
		getShipmentHistoryHandler: h.GetShipmentHistory,
		getCurrentStatusHandler:   h.GetCurrentStatus,
		getReturnHandler:          h.GetReturn,
		listShipmentsHandler:      h.ListShipments,
		listOverdueHandler:        h.ListOverdue,
		listReturnsHandler:        h.ListReturns,
		listMethodsHandler:        h.ListMethods,
		listWarehousesHandler:     h.ListWarehouses,
		listEmployeesHandler:      h.ListEmployees,
		listMovementsHandler:      h.ListMovements,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/overdue", s.ListOverdueShipments)
	api.GET("/shipments/:shipmentId", s.GetShipment)
	api.GET("/shipments/:shipmentId/history", s.GetShipmentHistory)
	api.GET("/shipments/:shipmentId/status", s.GetCurrentStatus)
	api.POST("/shipments/:shipmentId/status", s.AppendStatus)

	api.POST("/returns", s.CreateReturn)
	api.GET("/returns", s.ListReturns)
	api.GET("/returns/:returnId", s.GetReturn)
	api.POST("/returns/:returnId/advance", s.AdvanceReturn)

	api.POST("/shipping-methods", s.CreateShippingMethod)
	api.GET("/shipping-methods", s.ListShippingMethods)

	api.POST("/warehouses", s.CreateWarehouse)
	api.GET("/warehouses", s.ListWarehouses)
	api.GET("/warehouses/:warehouseId/movements", s.ListMovements)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.ListEmployees)

	api.POST("/movements", s.RecordMovement)
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrReferenceNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUniqueViolation), errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// pageParams reads optional offset/limit query parameters.
func pageParams(ctx echo.Context) (offset, limit int, err error) {
	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("offset", err)
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
	}
	return offset, limit, nil
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(req.OrderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	addressID, err := kernel.UUIDFromBytes(req.AddressID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("addressId", err))
	}
	methodID, err := kernel.UUIDFromBytes(req.MethodID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("methodId", err))
	}

	trackingCode := req.TrackingCode
	if trackingCode == "" {
		trackingCode = shipment.GenerateTrackingCode()
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, addressID, methodID,
		trackingCode, time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.Bytes()})
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Shipment, len(shipments))
	for i, item := range shipments {
		response[i] = shipmentFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOverdueShipments handles GET /api/v1/shipments/overdue.
func (s *Server) ListOverdueShipments(ctx echo.Context) error {
	query, err := queries.NewListOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	overdue, err := s.listOverdueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	type overdueShipment struct {
		ID                    string    `json:"id"`
		TrackingCode          string    `json:"trackingCode"`
		EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
		Status                string    `json:"status"`
	}

	response := make([]overdueShipment, len(overdue))
	for i, item := range overdue {
		response[i] = overdueShipment{
			ID:                    item.ID.String(),
			TrackingCode:          item.TrackingCode,
			EstimatedDeliveryDate: item.EstimatedDeliveryDate,
			Status:                item.Status.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:shipmentId.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromQuery(result))
}

// GetShipmentHistory handles GET /api/v1/shipments/:shipmentId/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]StatusRecord, len(history))
	for i, record := range history {
		response[i] = statusRecordFromQuery(record)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentStatus handles GET /api/v1/shipments/:shipmentId/status.
func (s *Server) GetCurrentStatus(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetCurrentStatusQuery(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	record, err := s.getCurrentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusRecordFromQuery(record))
}

// AppendStatus handles POST /api/v1/shipments/:shipmentId/status.
func (s *Server) AppendStatus(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req AppendStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var employeeID *kernel.UUID
	if req.EmployeeID != nil {
		id, idErr := kernel.UUIDFromBytes((*req.EmployeeID)[:])
		if idErr != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("employeeId", idErr))
		}
		employeeID = &id
	}

	cmd, err := commands.NewAppendStatusCommand(shipmentID, status, req.Description, employeeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.appendStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateReturn handles POST /api/v1/returns.
func (s *Server) CreateReturn(ctx echo.Context) error {
	var req CreateReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.UUIDFromBytes(req.ShipmentID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("shipmentId", err))
	}

	lines := make([]returns.Line, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineReq.ProductID[:])
		if lineErr != nil {
			return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("productId", lineErr))
		}
		line, lineErr := returns.NewLine(productID, lineReq.Quantity)
		if lineErr != nil {
			return errorResponse(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	returnID := kernel.NewUUID()
	cmd, err := commands.NewCreateReturnCommand(returnID, shipmentID, req.Reason, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: returnID.Bytes()})
}

// ListReturns handles GET /api/v1/returns.
func (s *Server) ListReturns(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListReturnsQuery(offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items, err := s.listReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ReturnSummary, len(items))
	for i, item := range items {
		response[i] = returnSummaryFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetReturn handles GET /api/v1/returns/:returnId.
func (s *Server) GetReturn(ctx echo.Context) error {
	returnID, err := pathUUID(ctx, "returnId")
	if err != nil {
		return badRequest(ctx, "invalid return id")
	}

	query, err := queries.NewGetReturnQuery(returnID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getReturnHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, returnFromQuery(result))
}

// AdvanceReturn handles POST /api/v1/returns/:returnId/advance.
func (s *Server) AdvanceReturn(ctx echo.Context) error {
	returnID, err := pathUUID(ctx, "returnId")
	if err != nil {
		return badRequest(ctx, "invalid return id")
	}

	var req AdvanceReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	state, err := returns.StateFromString(req.State)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceReturnCommand(returnID, state)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.advanceReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateShippingMethod handles POST /api/v1/shipping-methods.
func (s *Server) CreateShippingMethod(ctx echo.Context) error {
	var req CreateShippingMethodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := shippingmethod.KindFromString(req.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}

	methodID := kernel.NewUUID()
	cmd, err := commands.NewCreateShippingMethodCommand(methodID, kind,
		req.Description, req.EstimatedDays, req.Cost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: methodID.Bytes()})
}

// ListShippingMethods handles GET /api/v1/shipping-methods.
func (s *Server) ListShippingMethods(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListShippingMethodsQuery(offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	methods, err := s.listMethodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ShippingMethod, len(methods))
	for i, item := range methods {
		response[i] = methodFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req CreateWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := warehouse.KindFromString(req.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}

	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(warehouseID, req.Address, kind)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: warehouseID.Bytes()})
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListWarehousesQuery(offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	warehouses, err := s.listWarehousesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Warehouse, len(warehouses))
	for i, item := range warehouses {
		response[i] = warehouseFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListMovements handles GET /api/v1/warehouses/:warehouseId/movements.
func (s *Server) ListMovements(ctx echo.Context) error {
	warehouseID, err := pathUUID(ctx, "warehouseId")
	if err != nil {
		return badRequest(ctx, "invalid warehouse id")
	}

	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListMovementsQuery(warehouseID, offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	movements, err := s.listMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Movement, len(movements))
	for i, item := range movements {
		response[i] = movementFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var req CreateEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	position, err := employee.PositionFromString(req.Position)
	if err != nil {
		return errorResponse(ctx, err)
	}

	area, err := employee.AreaFromString(req.Area)
	if err != nil {
		return errorResponse(ctx, err)
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(employeeID, req.Password,
		req.FirstName, req.LastName1, req.LastName2, req.Phone, req.Email, position, area)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: employeeID.Bytes()})
}

// ListEmployees handles GET /api/v1/employees.
func (s *Server) ListEmployees(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListEmployeesQuery(offset, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	employees, err := s.listEmployeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Employee, len(employees))
	for i, item := range employees {
		response[i] = employeeFromQuery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RecordMovement handles POST /api/v1/movements.
func (s *Server) RecordMovement(ctx echo.Context) error {
	var req RecordMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := kernel.UUIDFromBytes(req.WarehouseID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("warehouseId", err))
	}
	productID, err := kernel.UUIDFromBytes(req.ProductID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("productId", err))
	}
	employeeID, err := kernel.UUIDFromBytes(req.EmployeeID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("employeeId", err))
	}

	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	movementID := kernel.NewUUID()
	cmd, err := commands.NewRecordMovementCommand(movementID, warehouseID, productID,
		employeeID, req.Quantity, recordedAt)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.recordMovementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: movementID.Bytes()})
}
