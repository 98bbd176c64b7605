// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - enumerated settlement currencies
//
// Provides a single instance per currency to allow easy comparison
// and to avoid carrying free-text codes through the ledgers
package currency

import (
	"fmt"
	"strings"

	"github.com/agritrace/anchord/fault"
)

// Currency - currency enumeration
type Currency uint64

// possible currency values
const (
	Nothing Currency = iota // this must be the first value
	AUD
	EUR
	GBP
	GHS
	KES
	USD
	maximumValue // this must be the last value

	First = Nothing + 1
	Last  = maximumValue - 1
)

// Count - number of currencies
const Count = int(Last)

// internal conversion
func toString(c Currency) (string, error) {
	switch c {
	case Nothing:
		return "", nil
	case AUD:
		return "AUD", nil
	case EUR:
		return "EUR", nil
	case GBP:
		return "GBP", nil
	case GHS:
		return "GHS", nil
	case KES:
		return "KES", nil
	case USD:
		return "USD", nil
	default:
		return "", fault.ErrInvalidCurrency
	}
}

// FromString - convert a currency code to its enumeration
func FromString(in string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(in)) {
	case "AUD":
		return AUD, nil
	case "EUR":
		return EUR, nil
	case "GBP":
		return GBP, nil
	case "GHS":
		return GHS, nil
	case "KES":
		return KES, nil
	case "USD":
		return USD, nil
	default:
		return Nothing, fault.ErrInvalidCurrency
	}
}

// DecimalPlaces - the canonical minor unit count for a currency
//
// all of the supported currencies use two; settlement records derive
// this from the stored currency rather than storing it again
func (currency Currency) DecimalPlaces() (uint64, error) {
	switch currency {
	case AUD, EUR, GBP, GHS, KES, USD:
		return 2, nil
	default:
		return 0, fault.ErrInvalidCurrency
	}
}

// IsValid - check the enumeration is in range
func (currency Currency) IsValid() bool {
	return currency >= First && currency <= Last
}

// String - convert a currency to its code for use by the fmt package (for %s)
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		return fmt.Sprintf("*invalid currency: %d*", uint64(currency))
	}
	return s
}

// GoString - convert enum value and code, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", uint64(currency), currency.String())
}

// MarshalText - convert currency to text
func (currency Currency) MarshalText() ([]byte, error) {
	s, err := toString(currency)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to a currency
func (currency *Currency) UnmarshalText(s []byte) error {
	c, err := FromString(string(s))
	if nil != err {
		return err
	}
	*currency = c
	return nil
}

// Uint64 - numeric value for packing
func (currency Currency) Uint64() uint64 {
	return uint64(currency)
}

// FromUint64 - validate and convert a packed numeric value
func FromUint64(n uint64) (Currency, error) {
	c := Currency(n)
	if !c.IsValid() {
		return Nothing, fault.ErrInvalidCurrency
	}
	return c, nil
}
