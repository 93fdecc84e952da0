package shippingmethod

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Kind classifies a shipping method by delivery speed.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindStandard is regular ground delivery.
	KindStandard

	// KindFast is accelerated delivery.
	KindFast

	// KindExpress is the fastest delivery tier.
	KindExpress
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "unknown",
		KindStandard: "standard",
		KindFast:     "fast",
		KindExpress:  "express",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindStandard: "standard",
		KindFast:     "fast",
		KindExpress:  "express",
	}
}

// KindFromString parses the persisted or caller-supplied representation.
// Accepted values are "standard", "fast" and "express".
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid shipping method kind", s))
}

// Validate checks that the Kind is one of the defined delivery tiers.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid shipping method kind", k))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
