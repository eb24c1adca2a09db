package services

import (
	"fmt"
	"log"

	"bazar/internal/models"
	"bazar/internal/repositories"
	"bazar/pkg/rabbitmq"
)

// OrderItemRequest is a single checkout line: the client's cart entry with the
// product snapshot fields captured at order time.
type OrderItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the checkout payload. Subtotal and ShippingCost are
// pointers so that an absent value can be told apart from an explicit zero:
// a missing subtotal is derived from the items, a missing shipping cost
// defaults to zero.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	DeliveryCity    string             `json:"delivery_city" validate:"required"`
	DeliveryArea    string             `json:"delivery_area"`
	PostalCode      string             `json:"postal_code"`
	OrderNotes      string             `json:"order_notes"`
	PaymentMethod   string             `json:"payment_method"`
	Subtotal        *float64           `json:"subtotal"`
	ShippingCost    *float64           `json:"shipping_cost"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder validates the checkout request, computes the totals, snapshots
// the line items and persists the order with status pending. userID is nil for
// guest checkouts.
func (s *OrderService) CreateOrder(req CreateOrderRequest, userID *string) (*models.Order, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.DeliveryAddress == "" || req.DeliveryCity == "" {
		return nil, fmt.Errorf("missing required customer or delivery fields")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("order item is missing a product name")
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("order item quantity must be positive")
		}
	}

	// Subtotal is derived from the items unless supplied independently.
	var subtotal float64
	if req.Subtotal != nil {
		subtotal = *req.Subtotal
	} else {
		for _, item := range req.Items {
			subtotal += item.Price * float64(item.Quantity)
		}
	}

	var shippingCost float64
	if req.ShippingCost != nil {
		shippingCost = *req.ShippingCost
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCashOnDelivery
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		var productID *string
		if item.ID != "" {
			id := item.ID
			productID = &id
		}
		items = append(items, models.OrderItem{
			ProductID:    productID,
			ProductName:  item.Name,
			ProductImage: item.Image,
			Price:        item.Price,
			Quantity:     item.Quantity,
			Subtotal:     item.Price * float64(item.Quantity),
		})
	}

	newOrder := &models.Order{
		OrderNumber:     models.GenerateOrderNumber(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCity:    req.DeliveryCity,
		DeliveryArea:    req.DeliveryArea,
		PostalCode:      req.PostalCode,
		OrderNotes:      req.OrderNotes,
		PaymentMethod:   paymentMethod,
		Status:          models.StatusPending,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Total:           subtotal + shippingCost,
		Items:           items,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent(rabbitmq.OrderEvent{
		Event:         rabbitmq.EventOrderCreated,
		OrderID:       newOrder.ID,
		OrderNumber:   newOrder.OrderNumber,
		CustomerName:  newOrder.CustomerName,
		CustomerPhone: newOrder.CustomerPhone,
		Status:        newOrder.Status,
		Total:         newOrder.Total,
	})

	return newOrder, nil
}

// ListOrders retrieves orders, optionally filtered by status, newest first.
func (s *OrderService) ListOrders(filter repositories.OrderListFilter) ([]models.Order, error) {
	if filter.Status != "" && !models.IsValidOrderStatus(filter.Status) {
		return nil, fmt.Errorf("invalid order status: %s", filter.Status)
	}
	return s.orderRepo.List(filter)
}

// GetOrderByID retrieves a single order with its items.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetUserOrders retrieves the orders belonging to a user, newest first.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// UpdateOrderStatus overwrites the status of an existing order. Any value from
// the fixed status set is accepted regardless of the current status; values
// outside the set are rejected before touching the repository.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.IsValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		log.Printf("Warning: order %s updated but could not be reloaded for event publishing: %v", id, err)
		return nil
	}
	s.publishEvent(rabbitmq.OrderEvent{
		Event:         rabbitmq.EventOrderStatusChanged,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		Total:         order.Total,
	})

	return nil
}

// DeleteOrder removes an order and its items.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// GetOrderStats returns per-status order counts for the admin dashboard.
func (s *OrderService) GetOrderStats() (*models.OrderStats, error) {
	return s.orderRepo.Stats()
}

// publishEvent publishes an order event if a message broker is configured.
// Publish failures are logged, never surfaced: notification delivery must not
// fail the order operation.
func (s *OrderService) publishEvent(event rabbitmq.OrderEvent) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	if err := s.mqClient.PublishOrderEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", event.Event, event.OrderID, err)
	}
}
