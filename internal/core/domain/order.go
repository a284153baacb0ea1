package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderPaid
	OrderShipped
	OrderCompleted
	OrderCancelled
)

// Order is a purchase placed by a user.
type Order struct {
	Entity          `bson:",inline"`
	OrderNo         string      `json:"orderNo" bson:"order_no"`
	UserID          int64       `json:"userId" bson:"user_id"`
	TotalAmount     float64     `json:"totalAmount" bson:"total_amount"`
	Status          OrderStatus `json:"status" bson:"status"`
	PaymentMethod   string      `json:"paymentMethod,omitempty" bson:"payment_method,omitempty"`
	PaymentTime     *time.Time  `json:"paymentTime,omitempty" bson:"payment_time,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty" bson:"delivery_address,omitempty"`
	Remark          string      `json:"remark,omitempty" bson:"remark,omitempty"`
}

// CanCancel reports whether the order may still be cancelled by its owner.
func (o *Order) CanCancel() bool {
	return o.Status == OrderPending
}
