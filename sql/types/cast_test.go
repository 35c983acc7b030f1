package types

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"
)

func TestCanCast(t *testing.T) {
	testCases := []struct {
		from, to arrow.DataType
		ok       bool
	}{
		{Int64, Int64, true},
		{Int64, Int32, true},
		{Int64, Float64, true},
		{Int64, Utf8, true},
		{Int64, Boolean, true},
		{Float64, Int8, true},
		{Boolean, Utf8, true},
		{Boolean, Int64, true},
		{Utf8, Int64, true},
		{Utf8, TimestampUs, true},
		{Utf8, Binary, true},
		{Binary, Utf8, true},
		{Date32, TimestampUs, true},
		{Date32, Int64, true},
		{TimestampUs, Utf8, true},
		{Null, Int64, true},
		{Null, ListOf(Int64), true},
		{ListOf(Int32), ListOf(Int64), true},
		{ListOf(Utf8), ListOf(TimestampUs), true},

		{Int64, ListOf(Int64), false},
		{ListOf(Int64), Int64, false},
		{Boolean, Date32, false},
		{Date32, Boolean, false},
		{Binary, Int64, false},
		{StructOf(arrow.Field{Name: "a", Type: Int64}), Utf8, false},
	}

	for _, tt := range testCases {
		require.Equal(t, tt.ok, CanCast(tt.from, tt.to),
			"CanCast(%s, %s)", tt.from, tt.to)
	}
}
