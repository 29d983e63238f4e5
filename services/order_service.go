package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	RestRepo   *repository.RestaurantRepository
	DriverRepo *repository.DriverRepository
	Log        *zap.SugaredLogger

	// Notify, when set, receives every committed status change (ws feed).
	Notify func(o *entity.Order)
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	driverRepo *repository.DriverRepository,
	log *zap.SugaredLogger,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, DriverRepo: driverRepo, Log: log}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}
type ContactIn struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
type DeliveryIn struct {
	Building string `json:"building"`
	Street   string `json:"street"`
	City     string `json:"city"`
}
type FinancialsIn struct {
	Total float64 `json:"total"`
}
type CreateOrderReq struct {
	RestaurantID string        `json:"restaurantId" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	Contact      *ContactIn    `json:"contact"`
	Delivery     *DeliveryIn   `json:"delivery"`
	Financials   *FinancialsIn `json:"financials"`
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items is required", apperr.ErrValidation)
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: invalid quantity for item %s", apperr.ErrValidation, it.Name)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: invalid price for item %s", apperr.ErrValidation, it.Name)
		}
	}

	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, req.RestaurantID)
	}

	order := entity.Order{
		OrderID:      "ord-" + uuid.NewString()[:8],
		RestaurantID: req.RestaurantID,
		Status:       entity.OrderPending,
		PlacedAt:     time.Now(),
	}
	if req.Contact != nil {
		order.CustomerName = req.Contact.Name
	}
	if req.Delivery != nil {
		order.DeliveryAddress = req.Delivery.Building + " " + req.Delivery.Street + ", " + req.Delivery.City
	}
	if req.Financials != nil {
		order.TotalAmount = req.Financials.Total
	} else {
		for _, it := range req.Items {
			order.TotalAmount += it.Price * float64(it.Quantity)
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:   order.OrderID,
				FoodName:  it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Infow("order created", "orderId", order.OrderID, "restaurantId", order.RestaurantID, "total", order.TotalAmount)
	return &order, nil
}

// ----- Queries -----

func (s *OrderService) Get(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", apperr.ErrNotFound, orderID)
	}
	return o, err
}

func (s *OrderService) PendingOrders() ([]entity.Order, error) {
	return s.Repo.ListByStatus(entity.OrderPending)
}

// BuildSummary renders the customer-facing confirmation text: restaurant,
// order date/time, a 40-minute delivery estimate, the item lines and total.
func (s *OrderService) BuildSummary(orderID string) (string, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return "", err
	}
	rest, err := s.RestRepo.Get(o.RestaurantID)
	if err != nil {
		return "", err
	}
	items, err := s.Repo.GetOrderItems(o.OrderID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Restaurant: " + rest.Name + "\n")
	sb.WriteString("Order date: " + o.PlacedAt.Format("01-02-2006") + "\n")
	sb.WriteString("Time of order: " + o.PlacedAt.Format("3:04 PM") + "\n")
	sb.WriteString("Estimated delivery time: " + o.PlacedAt.Add(40*time.Minute).Format("3:04 PM") + "\n\n")
	sb.WriteString("Items:\n")
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("- %s x%d ($%.2f)\n", it.FoodName, it.Quantity, it.UnitPrice))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: $%.2f", o.TotalAmount))
	return sb.String(), nil
}
