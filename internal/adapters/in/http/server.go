// Package http exposes the cart and checkout engine over REST.
// Callers are identified by the X-User-ID and X-User-Role headers; an
// authenticating gateway in front of this service is expected to set them.
package http

import (
	"errors"
	"net/http"

	"garments/internal/core/application/cartstore"
	"garments/internal/core/application/usecases/commands"
	"garments/internal/core/application/usecases/queries"
	"garments/internal/core/domain/model/address"
	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"
	"garments/internal/pkg/errs"
	"garments/internal/sessions"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registry               *sessions.Registry
	measurementClient      ports.MeasurementClient
	getMeasurementsHandler queries.GetMeasurementsQueryHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
}

// NewServer creates a new HTTP server with the required collaborators and handlers.
func NewServer(
	registry *sessions.Registry,
	measurementClient ports.MeasurementClient,
	getMeasurementsHandler queries.GetMeasurementsQueryHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
) *Server {
	return &Server{
		registry:               registry,
		measurementClient:      measurementClient,
		getMeasurementsHandler: getMeasurementsHandler,
		placeOrderHandler:      placeOrderHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/cart", s.GetCart)
	api.PATCH("/cart/items/:itemID", s.UpdateCartItemQuantity)
	api.DELETE("/cart/items/:itemID", s.RemoveCartItem)
	api.GET("/measurements", s.GetMeasurements)
	api.POST("/checkout", s.BeginCheckout)
	api.GET("/checkout", s.GetCheckout)
	api.DELETE("/checkout", s.AbandonCheckout)
	api.PUT("/checkout/address", s.SetCheckoutAddress)
	api.PUT("/checkout/measurement", s.SelectCheckoutMeasurement)
	api.POST("/checkout/advance", s.AdvanceCheckout)
	api.POST("/checkout/retreat", s.RetreatCheckout)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetCart handles GET /api/v1/cart - returns the caller's cart view.
//
//	@Summary	Get the current cart
//	@Tags		cart
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart [get]
func (s *Server) GetCart(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	return ctx.JSON(http.StatusOK, cartView(session.Store()))
}

// UpdateCartItemQuantity handles PATCH /api/v1/cart/items/:itemID.
// Quantities below 1 and remote failures are absorbed; the response always
// carries the cart as it stands afterwards.
//
//	@Summary	Change the quantity of one cart line
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string					true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string					true	"organization or individual"
//	@Param		itemID		path		string					true	"Cart line identifier"
//	@Param		body		body		UpdateQuantityRequest	true	"New quantity"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart/items/{itemID} [patch]
func (s *Server) UpdateCartItemQuantity(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Store().UpdateQuantity(ctx.Request().Context(), itemID, req.Quantity)

	return ctx.JSON(http.StatusOK, cartView(session.Store()))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:itemID.
// Remote failures are absorbed; the line stays in the returned view when the
// removal did not go through.
//
//	@Summary	Remove one cart line
//	@Tags		cart
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Param		itemID		path		string	true	"Cart line identifier"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart/items/{itemID} [delete]
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Store().Remove(ctx.Request().Context(), itemID)

	return ctx.JSON(http.StatusOK, cartView(session.Store()))
}

// GetMeasurements handles GET /api/v1/measurements - lists the caller's
// measurement profiles for their role.
//
//	@Summary	List measurement profiles
//	@Tags		measurements
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	200			{array}		MeasurementResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/measurements [get]
func (s *Server) GetMeasurements(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMeasurementsQuery(userID, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	profiles, err := s.getMeasurementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve measurement profiles",
		})
	}

	response := make([]MeasurementResponse, len(profiles))
	for i, profile := range profiles {
		response[i] = MeasurementResponse{ID: profile.ID.String(), Name: profile.Name}
	}
	return ctx.JSON(http.StatusOK, response)
}

// BeginCheckout handles POST /api/v1/checkout - starts a fresh flow over the
// current cart. Any previous flow is discarded.
//
//	@Summary	Begin a checkout flow
//	@Tags		checkout
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	201			{object}	CheckoutResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/checkout [post]
func (s *Server) BeginCheckout(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	session, err := s.registry.BeginCheckout(ctx.Request().Context(), userID, role)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to begin checkout",
		})
	}

	session.Lock()
	defer session.Unlock()

	return ctx.JSON(http.StatusCreated, checkoutView(session))
}

// GetCheckout handles GET /api/v1/checkout - returns the state of the active flow.
//
//	@Summary	Get the active checkout flow
//	@Tags		checkout
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	200			{object}	CheckoutResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/checkout [get]
func (s *Server) GetCheckout(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Lock()
	defer session.Unlock()

	if session.Checkout() == nil {
		return noActiveCheckout(ctx)
	}

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

// AbandonCheckout handles DELETE /api/v1/checkout - drops the active flow.
//
//	@Summary	Abandon the active checkout flow
//	@Tags		checkout
//	@Param		X-User-ID	header	string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header	string	true	"organization or individual"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/checkout [delete]
func (s *Server) AbandonCheckout(ctx echo.Context) error {
	userID, _, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	s.registry.EndCheckout(userID)
	return ctx.NoContent(http.StatusNoContent)
}

// SetCheckoutAddress handles PUT /api/v1/checkout/address.
// Permitted only while the flow is at the details stage.
//
//	@Summary	Set the delivery address
//	@Tags		checkout
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string			true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string			true	"organization or individual"
//	@Param		body		body		AddressRequest	true	"Delivery address"
//	@Success	200			{object}	CheckoutResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/checkout/address [put]
func (s *Server) SetCheckoutAddress(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Lock()
	defer session.Unlock()

	if session.Checkout() == nil {
		return noActiveCheckout(ctx)
	}

	delivery := address.NewDelivery()
	delivery.FullName = req.FullName
	delivery.PhoneNumber = req.PhoneNumber
	delivery.AddressLine1 = req.AddressLine1
	delivery.AddressLine2 = req.AddressLine2
	delivery.City = req.City
	delivery.State = req.State
	delivery.PostalCode = req.PostalCode
	if req.Country != "" {
		delivery.Country = req.Country
	}

	if err := session.Checkout().SetAddress(delivery); err != nil {
		return conflict(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

// SelectCheckoutMeasurement handles PUT /api/v1/checkout/measurement.
// The chosen profile must exist among the caller's profiles for their role.
//
//	@Summary	Select the measurement profile
//	@Tags		checkout
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string						true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string						true	"organization or individual"
//	@Param		body		body		SelectMeasurementRequest	true	"Profile to apply"
//	@Success	200			{object}	CheckoutResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/checkout/measurement [put]
func (s *Server) SelectCheckoutMeasurement(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SelectMeasurementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	measurementID, err := kernel.UUIDFromString(req.MeasurementID)
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Lock()
	defer session.Unlock()

	if session.Checkout() == nil {
		return noActiveCheckout(ctx)
	}

	profiles, err := s.measurementClient.FetchForRole(ctx.Request().Context(), userID, role)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to verify measurement profile",
		})
	}
	if !containsProfile(profiles, measurementID) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Measurement profile not found for this user and role",
		})
	}

	if err := session.Checkout().SelectMeasurement(measurementID); err != nil {
		return conflict(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

// AdvanceCheckout handles POST /api/v1/checkout/advance.
// At the details stage it moves the flow to review once the guard is met.
// At the review stage it places the order; on success the flow reaches
// confirmation and the submitted items are cleaned out of the cart.
//
//	@Summary	Advance the checkout flow
//	@Tags		checkout
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	200			{object}	CheckoutResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Router		/checkout/advance [post]
func (s *Server) AdvanceCheckout(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Lock()
	defer session.Unlock()

	flow := session.Checkout()
	if flow == nil {
		return noActiveCheckout(ctx)
	}

	if flow.Stage() == checkout.Review {
		return s.placeOrder(ctx, userID, role, session)
	}

	if err := flow.Advance(); err != nil {
		return conflict(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

// RetreatCheckout handles POST /api/v1/checkout/retreat - moves the flow from
// review back to details.
//
//	@Summary	Retreat the checkout flow
//	@Tags		checkout
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"User identifier (UUID)"
//	@Param		X-User-Role	header		string	true	"organization or individual"
//	@Success	200			{object}	CheckoutResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/checkout/retreat [post]
func (s *Server) RetreatCheckout(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	session := s.registry.GetOrCreate(ctx.Request().Context(), userID, role)
	session.Lock()
	defer session.Unlock()

	if session.Checkout() == nil {
		return noActiveCheckout(ctx)
	}

	if err := session.Checkout().Retreat(); err != nil {
		return conflict(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

func (s *Server) placeOrder(ctx echo.Context, userID kernel.UUID, role kernel.Role, session *sessions.Session) error {
	cmd, err := commands.NewPlaceOrderCommand(userID, role, session.Checkout())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrCartSnapshotIsEmpty),
			errors.Is(err, commands.ErrNotAtReview),
			errors.Is(err, checkout.ErrDetailsIncomplete):
			return conflict(ctx, err)
		case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
			return badRequest(ctx, err)
		default:
			return ctx.JSON(http.StatusBadGateway, ErrorResponse{
				Code:    http.StatusBadGateway,
				Message: "Order creation failed",
			})
		}
	}

	// The submitted cart lines were removed remotely; reload so the returned
	// view reflects what the cart service now holds.
	session.Store().Load(ctx.Request().Context())

	return ctx.JSON(http.StatusOK, checkoutView(session))
}

func identity(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.UUID{}, kernel.UnknownRole, errors.New("missing or invalid X-User-ID header")
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.UUID{}, kernel.UnknownRole, errors.New("missing or invalid X-User-Role header")
	}

	return userID, role, nil
}

func cartView(store *cartstore.Store) CartResponse {
	items := store.Items()
	response := CartResponse{
		Items:           make([]CartItemResponse, len(items)),
		Subtotal:        store.Subtotal(),
		SubtotalDisplay: kernel.FormatINR(store.Subtotal()),
		TotalItemCount:  store.TotalItemCount(),
	}

	for i, item := range items {
		response.Items[i] = CartItemResponse{
			ID:           item.ID().String(),
			ProductID:    item.ProductID().String(),
			Name:         item.Name(),
			Price:        item.Price().Amount(),
			PriceDisplay: kernel.FormatINR(item.Price().Amount()),
			Quantity:     item.Quantity(),
			Size:         item.Size(),
			ImageURL:     item.ImageURL(),
			Updating:     store.IsUpdating(item.ID()),
			Removing:     store.IsRemoving(item.ID()),
		}
	}

	return response
}

func checkoutView(session *sessions.Session) CheckoutResponse {
	flow := session.Checkout()
	items := flow.Items()
	delivery := flow.Address()

	subtotal := 0.0
	lines := make([]CartItemResponse, len(items))
	for i, item := range items {
		subtotal += item.LineTotal()
		lines[i] = CartItemResponse{
			ID:           item.ID().String(),
			ProductID:    item.ProductID().String(),
			Name:         item.Name(),
			Price:        item.Price().Amount(),
			PriceDisplay: kernel.FormatINR(item.Price().Amount()),
			Quantity:     item.Quantity(),
			Size:         item.Size(),
			ImageURL:     item.ImageURL(),
		}
	}

	response := CheckoutResponse{
		Stage: flow.Stage().String(),
		Address: AddressResponse{
			FullName:     delivery.FullName,
			PhoneNumber:  delivery.PhoneNumber,
			AddressLine1: delivery.AddressLine1,
			AddressLine2: delivery.AddressLine2,
			City:         delivery.City,
			State:        delivery.State,
			PostalCode:   delivery.PostalCode,
			Country:      delivery.Country,
		},
		Items:           lines,
		Subtotal:        subtotal,
		SubtotalDisplay: kernel.FormatINR(subtotal),
		CanAdvance:      flow.CanLeaveDetails(),
	}

	if id := flow.MeasurementID(); id != nil {
		response.MeasurementID = id.String()
	}

	return response
}

func containsProfile(profiles []ports.MeasurementProfile, id kernel.UUID) bool {
	for _, profile := range profiles {
		if profile.ID.IsEqual(id) {
			return true
		}
	}
	return false
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func conflict(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}

func noActiveCheckout(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "No active checkout flow",
	})
}
