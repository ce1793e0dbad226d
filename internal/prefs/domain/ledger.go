package domain

// Ledger operations are pure copy-on-write transforms: the input value is
// never mutated, so reactive consumers can detect change by identity.

// ToggleFavorite flips membership of id in the set.
func ToggleFavorite(favorites Favorites, id uint) Favorites {
	next := make(Favorites, len(favorites)+1)
	for k := range favorites {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// AddToCart increments the quantity for id by one, inserting at one.
func AddToCart(cart Cart, id uint) Cart {
	next := make(Cart, len(cart)+1)
	for k, v := range cart {
		next[k] = v
	}
	next[id]++
	return next
}

// RemoveFromCart decrements the quantity for id by one. An entry that
// would reach zero is deleted outright; the cart never holds a zero or
// negative quantity.
func RemoveFromCart(cart Cart, id uint) Cart {
	next := make(Cart, len(cart))
	for k, v := range cart {
		next[k] = v
	}
	if q, ok := next[id]; ok {
		if q <= 1 {
			delete(next, id)
		} else {
			next[id] = q - 1
		}
	}
	return next
}
