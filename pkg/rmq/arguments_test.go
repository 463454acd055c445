package rmq_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func TestArguments_SetGetDelete(t *testing.T) {
	t.Parallel()

	args := rmq.NewArguments().
		Set("x-max-length", 1000).
		Set("x-queue-type", "quorum")

	value, ok := args.Get("x-queue-type")
	require.True(t, ok)
	assert.Equal(t, "quorum", value)

	_, ok = args.Get("x-missing")
	assert.False(t, ok)

	// Re-setting keeps the original position.
	args.Set("x-max-length", 2000)
	assert.Equal(t, []string{"x-max-length", "x-queue-type"}, args.Keys())

	args.Delete("x-max-length")
	assert.Equal(t, []string{"x-queue-type"}, args.Keys())
	assert.Equal(t, 1, args.Len())

	// Deleting an absent key is a no-op.
	args.Delete("x-max-length")
	assert.Equal(t, 1, args.Len())
}

func TestArguments_MarshalPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	args := rmq.NewArguments().
		Set("x-queue-type", "quorum").
		Set("x-max-length", 1000).
		Set("x-dead-letter-exchange", "dlx")

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.Equal(t, `{"x-queue-type":"quorum","x-max-length":1000,"x-dead-letter-exchange":"dlx"}`, string(data))
}

func TestArguments_DecodeEncodeIsByteStable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "key order and large integer",
			doc:  `{"x-max-length":9007199254740993,"x-queue-type":"quorum"}`,
		},
		{
			name: "float precision",
			doc:  `{"factor":0.1,"ratio":2.5e10}`,
		},
		{
			name: "nested objects and arrays",
			doc:  `{"outer":{"b":2,"a":1},"list":[1,"two",{"three":3}],"tail":true}`,
		},
		{
			name: "null and empty containers",
			doc:  `{"a":null,"b":{},"c":[]}`,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var args rmq.Arguments
			require.NoError(t, json.Unmarshal([]byte(testCase.doc), &args))

			out, err := json.Marshal(&args)
			require.NoError(t, err)
			assert.Equal(t, testCase.doc, string(out))
		})
	}
}

func TestArguments_UnmarshalNumbersKeepPrecision(t *testing.T) {
	t.Parallel()

	var args rmq.Arguments
	require.NoError(t, json.Unmarshal([]byte(`{"x-max-length":9007199254740993}`), &args))

	value, ok := args.Get("x-max-length")
	require.True(t, ok)

	num, ok := value.(json.Number)
	require.True(t, ok)

	parsed, err := num.Int64()
	require.NoError(t, err)
	// Would round to ...992 if decoded through float64.
	assert.Equal(t, int64(9007199254740993), parsed)
}

func TestArguments_NestedObjectsDecodeAsArguments(t *testing.T) {
	t.Parallel()

	var args rmq.Arguments
	require.NoError(t, json.Unmarshal([]byte(`{"outer":{"b":2,"a":1}}`), &args))

	value, ok := args.Get("outer")
	require.True(t, ok)

	nested, ok := value.(*rmq.Arguments)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, nested.Keys())
}

func TestArguments_CloneIsolation(t *testing.T) {
	t.Parallel()

	original := rmq.NewArguments().Set("x-queue-type", "quorum")
	original.Set("nested", rmq.NewArguments().Set("a", 1))

	clone := original.Clone()
	clone.Set("x-queue-type", "stream")

	nested, ok := clone.Get("nested")
	require.True(t, ok)
	nested.(*rmq.Arguments).Set("a", 2)

	value, _ := original.Get("x-queue-type")
	assert.Equal(t, "quorum", value)

	originalNested, _ := original.Get("nested")
	nestedValue, _ := originalNested.(*rmq.Arguments).Get("a")
	assert.Equal(t, 1, nestedValue)
}

func TestArguments_NilReceiverReads(t *testing.T) {
	t.Parallel()

	var args *rmq.Arguments

	_, ok := args.Get("anything")
	assert.False(t, ok)
	assert.Nil(t, args.Keys())
	assert.Equal(t, 0, args.Len())
	assert.Nil(t, args.Clone())
}
