// Package assert holds preconditions that indicate a programming error
// when violated.
package assert

import (
	"fmt"
	"reflect"
)

// NotNil panics if value is nil. A nil pointer, map, slice, func or chan
// stored in an interface counts as nil too.
func NotNil(name string, value any) {
	if isNil(value) {
		panic(fmt.Sprintf("expected %s to be not nil", name))
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
