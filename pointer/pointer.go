// Package pointer holds small helpers for the pointer-heavy persistence
// models, where nil distinguishes an absent field from its zero value.
package pointer

func FromAny[T any](v T) *T {
	return &v
}

func ToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
