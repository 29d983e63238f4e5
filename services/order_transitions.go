package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"

	"gorm.io/gorm"
)

// Order status only ever moves PENDING -> ASSIGNED -> DELIVERED. Both
// transitions are guarded conditional updates so a concurrent or repeated
// call loses cleanly instead of regressing the order.

// AssignDriver claims the driver and moves the order to ASSIGNED in one
// transaction. The driver claim is the compare-and-set: two calls racing for
// the same driver cannot both win.
func (s *OrderService) AssignDriver(orderID, driverID string) (*entity.Order, error) {
	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}
	if _, err := s.DriverRepo.Get(driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver %s", apperr.ErrNotFound, driverID)
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.DriverRepo.ClaimForOrder(tx, driverID)
		if err != nil {
			return err
		}
		if claimed == 0 {
			return fmt.Errorf("%w: driver %s is inactive or already assigned", apperr.ErrConflict, driverID)
		}
		affected, err := s.Repo.AssignDriverGuard(tx, orderID, driverID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order %s is not pending", apperr.ErrInvalidState, orderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.Log.Infow("driver assigned", "orderId", orderID, "driverId", driverID)
	if s.Notify != nil {
		s.Notify(o)
	}
	return o, nil
}

// MarkDelivered moves the order to DELIVERED and releases the driver. When at
// is nil the delivery timestamp is now.
func (s *OrderService) MarkDelivered(orderID string, at *time.Time) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	deliveredAt := time.Now()
	if at != nil {
		deliveredAt = *at
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.MarkDeliveredGuard(tx, orderID, deliveredAt)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order %s is not assigned", apperr.ErrInvalidState, orderID)
		}
		if o.DriverID != nil {
			if err := s.DriverRepo.Release(tx, *o.DriverID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err = s.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.Log.Infow("order delivered", "orderId", orderID, "deliveredAt", deliveredAt)
	if s.Notify != nil {
		s.Notify(o)
	}
	return o, nil
}
