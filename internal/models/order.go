package models

import "time"

// Statuts de commande autorisés. Aucun graphe de transition : l'admin peut
// passer d'un statut à n'importe quel autre.
const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index;not null" json:"user_id"`
	User      User        `json:"-"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    string      `gorm:"not null;default:pending" json:"status"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem fige le prix du produit au moment de la commande.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Product   Product `json:"-"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
