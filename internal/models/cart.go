package models

// Cart est l'état éphémère du panier en session : product id (string) → quantité.
// Invariant : toute quantité présente est ≥ 1, retirer la dernière unité
// supprime la clé.
type Cart map[string]int

func (c Cart) Increase(pid string) {
	c[pid]++
}

func (c Cart) Decrease(pid string) {
	if c[pid] > 1 {
		c[pid]--
	} else {
		delete(c, pid)
	}
}

func (c Cart) Remove(pid string) {
	delete(c, pid)
}

func (c Cart) Empty() bool {
	return len(c) == 0
}
