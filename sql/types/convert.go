package types

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/spf13/cast"
)

// Convert coerces a Go value to the representation used for literals of the
// given catalog type. A nil value converts to nil for any type.
func Convert(v interface{}, t arrow.DataType) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var out interface{}
	var err error
	switch t.ID() {
	case arrow.BOOL:
		out, err = cast.ToBoolE(v)
	case arrow.INT8:
		out, err = cast.ToInt8E(v)
	case arrow.INT16:
		out, err = cast.ToInt16E(v)
	case arrow.INT32:
		out, err = cast.ToInt32E(v)
	case arrow.INT64:
		out, err = cast.ToInt64E(v)
	case arrow.UINT8:
		out, err = cast.ToUint8E(v)
	case arrow.UINT16:
		out, err = cast.ToUint16E(v)
	case arrow.UINT32:
		out, err = cast.ToUint32E(v)
	case arrow.UINT64:
		out, err = cast.ToUint64E(v)
	case arrow.FLOAT32:
		out, err = cast.ToFloat32E(v)
	case arrow.FLOAT64:
		out, err = cast.ToFloat64E(v)
	case arrow.STRING, arrow.LARGE_STRING:
		out, err = cast.ToStringE(v)
	case arrow.BINARY, arrow.LARGE_BINARY:
		switch v := v.(type) {
		case []byte:
			out = v
		case string:
			out = []byte(v)
		default:
			return nil, ErrConvert.New(v, t)
		}
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP:
		out, err = cast.ToTimeE(v)
	case arrow.NULL:
		return nil, ErrConvert.New(v, t)
	default:
		return nil, ErrConvert.New(v, t)
	}
	if err != nil {
		return nil, ErrConvert.New(v, t)
	}
	return out, nil
}
