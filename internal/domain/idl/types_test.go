package idl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerFirst(t *testing.T) {
	// Only the first character is touched — no snake_case conversion.
	cases := map[string]string{
		"Transfer":   "transfer",
		"amount":     "amount",
		"XAuthority": "xAuthority",
		"Amount_Due": "amount_Due",
		"":           "",
		"A":          "a",
	}
	for in, want := range cases {
		assert.Equal(t, want, LowerFirst(in), in)
	}
}

func TestNewError(t *testing.T) {
	e := NewError(9001)
	assert.Equal(t, int64(9001), e.Code)
	assert.Equal(t, "CustomError9001", e.Name)
	assert.Equal(t, "Custom program error 9001", e.Msg)
}

func TestTypeShapeMarshal(t *testing.T) {
	cases := []struct {
		shape TypeShape
		want  string
	}{
		{Primitive("u8"), `"u8"`},
		{Named("Pubkey"), `"Pubkey"`},
		{Vector(Primitive("u64")), `{"vec":"u64"}`},
		{Vector(Vector(Primitive("u8"))), `{"vec":{"vec":"u8"}}`},
		{Option(Primitive("bool")), `{"option":"bool"}`},
		{Tuple(Primitive("u8"), Named("Pubkey")), `{"tuple":["u8","Pubkey"]}`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.shape)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(data))
	}
}

func TestTypeShapeUnmarshal(t *testing.T) {
	var s TypeShape
	require.NoError(t, json.Unmarshal([]byte(`"u8"`), &s))
	assert.Equal(t, KindNamed, s.Kind)
	assert.Equal(t, "u8", s.Name)

	require.NoError(t, json.Unmarshal([]byte(`{"vec":"u64"}`), &s))
	assert.Equal(t, KindVector, s.Kind)
	require.NotNil(t, s.Elem)
	assert.Equal(t, "u64", s.Elem.Name)

	// The defined-type encoding from other toolchains folds into Named.
	require.NoError(t, json.Unmarshal([]byte(`{"defined":"OrderBook"}`), &s))
	assert.Equal(t, Named("OrderBook"), s)

	require.NoError(t, json.Unmarshal([]byte(`{"tuple":["u8","u16"]}`), &s))
	assert.Equal(t, KindTuple, s.Kind)
	assert.Len(t, s.Elems, 2)

	require.NoError(t, json.Unmarshal([]byte(`{"option":"u8"}`), &s))
	assert.Equal(t, KindOption, s.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"array":["u8",3]}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestTypeShapeRoundTrip(t *testing.T) {
	shape := Vector(Vector(Primitive("u8")))
	data, err := json.Marshal(shape)
	require.NoError(t, err)

	var back TypeShape
	require.NoError(t, json.Unmarshal(data, &back))
	out, err := json.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(out))
}
