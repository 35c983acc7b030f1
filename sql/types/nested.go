package types

import "github.com/apache/arrow-go/v18/arrow"

// FieldByKey resolves a keyed access into a composite type: a string key
// selects a struct field by name, an integer key selects the element type of
// a list. Any other combination of type and key fails.
func FieldByKey(t arrow.DataType, key interface{}) (arrow.Field, error) {
	switch t := t.(type) {
	case *arrow.StructType:
		name, ok := key.(string)
		if !ok {
			return arrow.Field{}, ErrFieldNotFound.New(key, t)
		}
		for _, f := range t.Fields() {
			if f.Name == name {
				return f, nil
			}
		}
		return arrow.Field{}, ErrFieldNotFound.New(name, t)
	case *arrow.ListType:
		switch key.(type) {
		case int, int32, int64:
			// List elements are always nullable: the index may be out of
			// bounds at runtime.
			return arrow.Field{Name: "item", Type: t.Elem(), Nullable: true}, nil
		}
		return arrow.Field{}, ErrFieldNotFound.New(key, t)
	default:
		return arrow.Field{}, ErrFieldNotFound.New(key, t)
	}
}
