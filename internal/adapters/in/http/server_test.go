package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/core/ports"
)

type stubMethodRepo struct {
	method *shippingmethod.Method
}

func (r *stubMethodRepo) Add(_ context.Context, _ *shippingmethod.Method) error {
	return nil
}

func (r *stubMethodRepo) Get(_ context.Context, _ kernel.UUID) (*shippingmethod.Method, error) {
	return r.method, nil
}

type stubShipmentRepo struct {
	added    *shipment.Shipment
	appended *shipment.StatusRecord
}

func (r *stubShipmentRepo) Add(_ context.Context, aggregate *shipment.Shipment) error {
	r.added = aggregate
	return nil
}

func (r *stubShipmentRepo) Get(_ context.Context, _ kernel.UUID) (*shipment.Shipment, error) {
	return r.added, nil
}

func (r *stubShipmentRepo) AppendStatus(_ context.Context, record *shipment.StatusRecord) error {
	r.appended = record
	return nil
}

func (r *stubShipmentRepo) GetCurrentStatus(_ context.Context, _ kernel.UUID) (*shipment.StatusRecord, error) {
	return r.appended, nil
}

func (r *stubShipmentRepo) ListStatusHistory(_ context.Context, _ kernel.UUID) ([]*shipment.StatusRecord, error) {
	return nil, nil
}

type stubCreateShipmentUoW struct {
	methods   *stubMethodRepo
	shipments *stubShipmentRepo
}

func (u *stubCreateShipmentUoW) Begin(_ context.Context) error    { return nil }
func (u *stubCreateShipmentUoW) Commit(_ context.Context) error   { return nil }
func (u *stubCreateShipmentUoW) Rollback(_ context.Context) error { return nil }

func (u *stubCreateShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	return u.shipments
}

func (u *stubCreateShipmentUoW) MethodRepository() ports.MethodRepository {
	return u.methods
}

type stubCreateShipmentUoWFactory struct {
	uow *stubCreateShipmentUoW
}

func (f stubCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	return f.uow
}

func newCreateShipmentServer(t *testing.T) (*echo.Echo, *stubShipmentRepo, *shippingmethod.Method) {
	t.Helper()

	method, err := shippingmethod.NewMethod(kernel.NewUUID(), shippingmethod.KindStandard,
		"ground shipping", 5, decimal.NewFromFloat(4.50))
	require.NoError(t, err)

	shipments := &stubShipmentRepo{}
	uow := &stubCreateShipmentUoW{
		methods:   &stubMethodRepo{method: method},
		shipments: shipments,
	}

	server := NewServer(Handlers{
		CreateShipment: commands.NewCreateShipmentCommandHandler(stubCreateShipmentUoWFactory{uow: uow}),
	})

	e := echo.New()
	server.RegisterRoutes(e)
	return e, shipments, method
}

// The ship date never comes from the client: a request carrying only the
// references must succeed, with the ship date stamped at creation time and
// the delivery estimate derived from it.
func TestCreateShipment_ShipDateStampedAtCreation(t *testing.T) {
	e, shipments, method := newCreateShipmentServer(t)

	body := fmt.Sprintf(`{"orderId":%q,"addressId":%q,"methodId":%q}`,
		uuid.NewString(), uuid.NewString(), method.ID().String())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	before := time.Now().UTC()
	e.ServeHTTP(rec, req)
	after := time.Now().UTC()

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, shipments.added)

	shipDate := shipments.added.ShipDate()
	assert.False(t, shipDate.Before(before))
	assert.False(t, shipDate.After(after))
	assert.Equal(t, shipDate.AddDate(0, 0, 5), shipments.added.EstimatedDeliveryDate())
}

// A shipDate field in the request body is not part of the contract and
// must not steer the delivery estimate.
func TestCreateShipment_ClientShipDateIgnored(t *testing.T) {
	e, shipments, method := newCreateShipmentServer(t)

	body := fmt.Sprintf(`{"orderId":%q,"addressId":%q,"methodId":%q,"shipDate":"2020-01-01T00:00:00Z"}`,
		uuid.NewString(), uuid.NewString(), method.ID().String())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, shipments.added)
	assert.True(t, shipments.added.ShipDate().After(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		"client-supplied ship date must be ignored")
}
