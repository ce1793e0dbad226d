package domain

import "testing"

func TestToggleFavoriteFlipsMembership(t *testing.T) {
	favorites := Favorites{}

	favorites = ToggleFavorite(favorites, 42)
	if _, ok := favorites[42]; !ok {
		t.Fatal("expected 42 to be favorited")
	}

	favorites = ToggleFavorite(favorites, 42)
	if _, ok := favorites[42]; ok {
		t.Fatal("expected second toggle to remove 42")
	}
	if len(favorites) != 0 {
		t.Fatalf("expected empty set, got %d entries", len(favorites))
	}
}

func TestToggleFavoriteDoesNotMutateInput(t *testing.T) {
	original := Favorites{7: {}}

	next := ToggleFavorite(original, 9)
	if len(original) != 1 {
		t.Fatalf("input mutated: %v", original)
	}
	if len(next) != 2 {
		t.Fatalf("expected 2 entries, got %v", next)
	}
}

func TestAddToCartInsertsAtOneAndIncrements(t *testing.T) {
	cart := Cart{}

	cart = AddToCart(cart, 5)
	if cart[5] != 1 {
		t.Fatalf("expected quantity 1, got %d", cart[5])
	}

	cart = AddToCart(cart, 5)
	cart = AddToCart(cart, 5)
	if cart[5] != 3 {
		t.Fatalf("expected quantity 3, got %d", cart[5])
	}
}

func TestRemoveFromCartDeletesAtOne(t *testing.T) {
	cart := Cart{5: 2}

	cart = RemoveFromCart(cart, 5)
	if cart[5] != 1 {
		t.Fatalf("expected quantity 1, got %d", cart[5])
	}

	cart = RemoveFromCart(cart, 5)
	if _, ok := cart[5]; ok {
		t.Fatal("expected entry to be deleted at zero")
	}
}

func TestRemoveFromCartMissingIDIsNoop(t *testing.T) {
	cart := Cart{3: 1}

	next := RemoveFromCart(cart, 99)
	if len(next) != 1 || next[3] != 1 {
		t.Fatalf("unexpected cart state: %v", next)
	}
}

func TestCartNeverHoldsNonPositiveQuantities(t *testing.T) {
	cart := Cart{}
	cart = AddToCart(cart, 1)
	cart = AddToCart(cart, 2)
	cart = RemoveFromCart(cart, 1)
	cart = RemoveFromCart(cart, 1)
	cart = RemoveFromCart(cart, 2)

	for id, q := range cart {
		if q <= 0 {
			t.Fatalf("cart holds non-positive quantity %d for id %d", q, id)
		}
	}
}

func TestCartOperationsDoNotMutateInput(t *testing.T) {
	original := Cart{1: 2}

	AddToCart(original, 1)
	RemoveFromCart(original, 1)

	if original[1] != 2 {
		t.Fatalf("input mutated: %v", original)
	}
}
