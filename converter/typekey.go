package converter

import (
	"path"
	"reflect"
)

// TypeKey identifies the runtime type of an object, pointers removed.
// The zero TypeKey stands for a nil object.
type TypeKey struct {
	t reflect.Type
}

// KeyOf returns the key of object's runtime type.
func KeyOf(object any) TypeKey {
	return KeyOfType(reflect.TypeOf(object))
}

// KeyFor returns the key of T.
func KeyFor[T any]() TypeKey {
	return KeyOfType(reflect.TypeFor[T]())
}

// KeyOfType returns the key of t with every pointer level removed.
func KeyOfType(t reflect.Type) TypeKey {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return TypeKey{t: t}
}

// IsValid is false for the key of a nil object.
func (k TypeKey) IsValid() bool { return k.t != nil }

// Type returns the underlying reflect type, nil for an invalid key.
func (k TypeKey) Type() reflect.Type { return k.t }

// String returns the type as "<package alias>.<Name>", for example "store.Customer".
func (k TypeKey) String() string {
	if k.t == nil {
		return "nil"
	}

	if k.t.Name() == "" || k.t.PkgPath() == "" {
		return k.t.String()
	}

	return path.Base(k.t.PkgPath()) + "." + k.t.Name()
}
