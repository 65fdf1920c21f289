package order

import (
	"errors"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
)

// CartLine est une ligne de panier résolue contre le catalogue courant.
type CartLine struct {
	Product  models.Product
	Quantity int
	Total    float64
}

// resolveCart joint chaque entrée du panier au produit courant et calcule les
// totaux. Les références périmées (produit supprimé depuis l'ajout) sont
// filtrées ici, sans toucher au panier stocké en session.
func resolveCart(db *gorm.DB, cart models.Cart) ([]CartLine, float64, error) {
	pids := make([]string, 0, len(cart))
	for pid := range cart {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool {
		a, _ := strconv.Atoi(pids[i])
		b, _ := strconv.Atoi(pids[j])
		return a < b
	})

	var (
		lines []CartLine
		total float64
	)
	for _, pid := range pids {
		id, err := strconv.ParseUint(pid, 10, 64)
		if err != nil {
			continue
		}

		var product models.Product
		err = db.First(&product, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		qty := cart[pid]
		lineTotal := product.Price * float64(qty)
		total += lineTotal
		lines = append(lines, CartLine{Product: product, Quantity: qty, Total: lineTotal})
	}
	return lines, total, nil
}
