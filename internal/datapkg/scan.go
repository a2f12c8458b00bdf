package datapkg

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// methodPrefix marks provider methods discovered by ScanMethods.
const methodPrefix = "As"

var providerMethodType = reflect.TypeOf((func(context.Context, *Handle) (any, error))(nil))

// ScanMethods binds every exported method of v that is named As<Name> and has
// the shape func(context.Context, *Handle) (any, error). The representation
// type is <Name> with each underscore decoded to a dot, so AsConfig_Tiny
// provides "Config.Tiny". Methods are visited in reflect order, which is
// lexicographic and therefore stable.
func (b *Builder) ScanMethods(v any) *Builder {
	if v == nil {
		b.fail(errors.New("cannot scan provider methods of a nil value"))
		return b
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		b.fail(errors.New("cannot scan provider methods of a nil pointer"))
		return b
	}

	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		t, ok := MethodType(m.Name)
		if !ok || rv.Method(i).Type() != providerMethodType {
			continue
		}
		fn := rv.Method(i).Interface().(func(context.Context, *Handle) (any, error))
		b.Provide(t, fn)
	}
	return b
}

// MethodType decodes a provider method name into its representation type.
func MethodType(name string) (Type, bool) {
	rest, ok := strings.CutPrefix(name, methodPrefix)
	if !ok || rest == "" {
		return Any, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return Any, false
	}
	for _, part := range strings.Split(rest, "_") {
		if part == "" {
			return Any, false
		}
	}
	return Type(strings.ReplaceAll(rest, "_", ".")), true
}
