package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"none", NoneValue(), NoneValue(), true},
		{"bool", BoolValue(true), BoolValue(true), true},
		{"bool mismatch", BoolValue(true), BoolValue(false), false},
		{"kind mismatch", BoolValue(false), NoneValue(), false},
		{"int", IntValue(3), IntValue(3), true},
		{"int float cross", IntValue(1), FloatValue(1.0), true},
		{"float int cross", FloatValue(2.0), IntValue(2), true},
		{"float int differ", FloatValue(2.5), IntValue(2), false},
		{"string", StringValue("a"), StringValue("a"), true},
		{"string mismatch", StringValue("a"), StringValue("b"), false},
		{
			"list",
			ListValue([]Value{IntValue(1), StringValue("x")}),
			ListValue([]Value{IntValue(1), StringValue("x")}),
			true,
		},
		{
			"list length",
			ListValue([]Value{IntValue(1)}),
			ListValue(nil),
			false,
		},
		{
			"list element",
			ListValue([]Value{IntValue(1)}),
			ListValue([]Value{IntValue(2)}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Equal(tt.b))
			require.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueString(t *testing.T) {
	require.Equal(t, "None", NoneValue().String())
	require.Equal(t, "True", BoolValue(true).String())
	require.Equal(t, "False", BoolValue(false).String())
	require.Equal(t, "42", IntValue(42).String())
	require.Equal(t, "0.5", FloatValue(0.5).String())
	require.Equal(t, "'never'", StringValue("never").String())
	require.Equal(t, `'it\'s'`, StringValue("it's").String())
	require.Equal(t,
		"['a', 1]",
		ListValue([]Value{StringValue("a"), IntValue(1)}).String(),
	)
	require.Equal(t, "[]", ListValue(nil).String())
}

func TestValueFromYAML(t *testing.T) {
	v, err := ValueFromYAML(nil)
	require.NoError(t, err)
	require.Equal(t, KindNone, v.Kind)

	v, err = ValueFromYAML(true)
	require.NoError(t, err)
	require.True(t, v.Equal(BoolValue(true)))

	v, err = ValueFromYAML(7)
	require.NoError(t, err)
	require.True(t, v.Equal(IntValue(7)))

	v, err = ValueFromYAML(0.25)
	require.NoError(t, err)
	require.True(t, v.Equal(FloatValue(0.25)))

	v, err = ValueFromYAML("top")
	require.NoError(t, err)
	require.True(t, v.Equal(StringValue("top")))

	v, err = ValueFromYAML([]interface{}{"a", 1})
	require.NoError(t, err)
	require.True(t, v.Equal(ListValue([]Value{StringValue("a"), IntValue(1)})))

	_, err = ValueFromYAML(map[string]interface{}{"k": "v"})
	require.ErrorIs(t, err, ErrUnresolvable)
}
