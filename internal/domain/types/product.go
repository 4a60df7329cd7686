package types

// Product is a read-only catalog entry. Prices are whole Chilean pesos.
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"nombre"`
	Price       int       `json:"precio"`
	Image       string    `json:"imagen"`
	Category    string    `json:"categoria,omitempty"`
	Description string    `json:"descripcion,omitempty"`
}

// CartLine is the persisted form of one cart row.
type CartLine struct {
	ProductID ProductID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CartItem is a cart row resolved against the catalog.
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns price times quantity.
func (i CartItem) Subtotal() int { return i.Product.Price * i.Quantity }

// CartState is the observable view of a cart.
type CartState struct {
	Items []CartItem
	Total int
}

// Empty reports whether the cart has no items.
func (s CartState) Empty() bool { return len(s.Items) == 0 }
