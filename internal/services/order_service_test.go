package services_test

import (
	"fmt"
	"testing"

	"bazar/internal/models"
	"bazar/internal/repositories"
	"bazar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(filter repositories.OrderListFilter) ([]models.Order, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepository) Stats() (*models.OrderStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderStats), args.Error(1)
}

func validCreateRequest() services.CreateOrderRequest {
	return services.CreateOrderRequest{
		CustomerName:    "Ayesha Rahman",
		CustomerPhone:   "01712345678",
		DeliveryAddress: "House 12, Road 5, Dhanmondi",
		DeliveryCity:    "Dhaka",
		Items: []services.OrderItemRequest{
			{ID: "prod-1", Name: "Premium Salat Khimar", Price: 500, Image: "khimar.jpg", Quantity: 1},
			{ID: "prod-2", Name: "Georgette Hijab", Price: 300, Image: "hijab.jpg", Quantity: 2},
		},
	}
}

func TestOrderService_CreateOrder_ComputesTotals(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	req := validCreateRequest()
	shipping := 70.0
	req.ShippingCost = &shipping

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder(req, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1100.0, order.Subtotal) // 500*1 + 300*2
	assert.Equal(t, 70.0, order.ShippingCost)
	assert.Equal(t, 1170.0, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Nil(t, order.UserID)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 600.0, order.Items[1].Subtotal) // 300*2, fixed at creation
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_DefaultsShippingAndPayment(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder(validCreateRequest(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, order.Subtotal, order.Total)
	assert.Equal(t, models.PaymentCashOnDelivery, order.PaymentMethod)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_SubtotalOverride(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	req := validCreateRequest()
	subtotal := 999.0
	req.Subtotal = &subtotal

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder(req, nil)

	assert.NoError(t, err)
	assert.Equal(t, 999.0, order.Subtotal)
	assert.Equal(t, 999.0, order.Total)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_AssociatesUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	userID := "user-123"
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder(validCreateRequest(), &userID)

	assert.NoError(t, err)
	assert.NotNil(t, order.UserID)
	assert.Equal(t, "user-123", *order.UserID)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_ValidationFailures(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// Missing customer fields
	req := validCreateRequest()
	req.CustomerPhone = ""
	order, err := service.CreateOrder(req, nil)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "missing required")

	// Empty item list
	req = validCreateRequest()
	req.Items = nil
	order, err = service.CreateOrder(req, nil)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "at least one item")

	// Non-positive quantity
	req = validCreateRequest()
	req.Items[0].Quantity = 0
	order, err = service.CreateOrder(req, nil)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "quantity must be positive")

	// The repository is never touched on validation failure.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_RepositoryError(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("database error")).Once()

	order, err := service.CreateOrder(validCreateRequest(), nil)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// Every enumerated status is accepted.
	for _, status := range models.OrderStatuses {
		mockRepo.On("UpdateStatus", "order-1", status).Return(nil).Once()
		mockRepo.On("GetByID", "order-1").Return(&models.Order{ID: "order-1", Status: status}, nil).Once()
		err := service.UpdateOrderStatus("order-1", status)
		assert.NoError(t, err)
	}
	mockRepo.AssertExpectations(t)

	// A value outside the enumeration is rejected before the repository.
	err := service.UpdateOrderStatus("order-1", "unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status: unknown")
	mockRepo.AssertNotCalled(t, "UpdateStatus", "order-1", "unknown")

	// Unknown order id surfaces as not found.
	mockRepo.On("UpdateStatus", "order-99", models.StatusShipped).
		Return(fmt.Errorf("order with ID order-99 not found for status update")).Once()
	err = service.UpdateOrderStatus("order-99", models.StatusShipped)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_ListOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expected := []models.Order{{ID: "order-1", Status: models.StatusPending}}
	filter := repositories.OrderListFilter{Status: models.StatusPending, Limit: 10}
	mockRepo.On("List", filter).Return(expected, nil).Once()

	orders, err := service.ListOrders(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)

	// An invalid status filter is rejected without a repository call.
	_, err = service.ListOrders(repositories.OrderListFilter{Status: "bogus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Delete", "order-1").Return(nil).Once()
	assert.NoError(t, service.DeleteOrder("order-1"))

	mockRepo.On("Delete", "order-99").Return(fmt.Errorf("order with ID order-99 not found for deletion")).Once()
	err := service.DeleteOrder("order-99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderStats(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expected := &models.OrderStats{Total: 5, Pending: 2, Shipped: 1, Delivered: 2}
	mockRepo.On("Stats").Return(expected, nil).Once()

	stats, err := service.GetOrderStats()
	assert.NoError(t, err)
	assert.Equal(t, expected, stats)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetUserOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	userID := "user-123"
	expected := []models.Order{{ID: "order-1", UserID: &userID}}
	mockRepo.On("GetByUserID", userID).Return(expected, nil).Once()

	orders, err := service.GetUserOrders(userID)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)
}
