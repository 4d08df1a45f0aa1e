package order

import (
	"regexp"
	"strings"
)

const MaxAddressLength = 500

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)

type ShippingAddress struct {
	value string
}

func NewShippingAddress(s string) (ShippingAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ShippingAddress{}, ErrEmptyAddress
	}
	if len(s) > MaxAddressLength {
		return ShippingAddress{}, ErrAddressTooLong
	}
	return ShippingAddress{value: s}, nil
}

func (a ShippingAddress) String() string { return a.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
