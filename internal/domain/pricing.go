package domain

const (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 500 still pays.
	FreeShippingThreshold int64 = 500
	ShippingFlatFee       int64 = 50
)

func Subtotal(c Cart) int64 {
	var sum int64
	for _, line := range c.Lines {
		sum += line.Product.Price * int64(line.Quantity)
	}
	return sum
}

func ItemCount(c Cart) int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func ShippingFee(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFlatFee
}

func Total(c Cart) int64 {
	subtotal := Subtotal(c)
	return subtotal + ShippingFee(subtotal)
}
