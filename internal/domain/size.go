package domain

// Size is one of the fixed garment sizes offered for the sale.
type Size string

const (
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

// AllSizes returns the size enumeration in display order.
func AllSizes() []Size {
	return []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}
}

func IsValidSize(s Size) bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL:
		return true
	}
	return false
}

const (
	SleeveShort = "pendek"
	SleeveLong  = "panjang"
)
