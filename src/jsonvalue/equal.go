// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

// Equal reports whether a and b are semantically equal: same scalar values,
// arrays equal element-wise, objects holding the same keys with equal values
// regardless of member order. Numbers compare by value, so Int(2) equals
// Double(2); use Kind to tell them apart.
func Equal(a, b Value) bool {
	if x, ok := a.AsNumber(); ok {
		y, ok := b.AsNumber()
		return ok && x == y
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, key := range a.obj.Keys() {
			av, _ := a.obj.Get(key)
			bv, ok := b.obj.Get(key)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
