package entity

// CartItem is one medicine selection in a user's shopping cart.
// Cart items are deleted in bulk once the payment that covers them settles.
type CartItem struct {
	ID           string
	UserEmail    string  // Owner of the cart entry.
	MedicineID   string  // References Medicine.ID.
	MedicineName string
	Company      string
	Price        float64 // Unit price captured at the time the item was added.
	Quantity     int
	SellerEmail  string
}

// Subtotal returns the line total for this cart entry.
func (c *CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}
