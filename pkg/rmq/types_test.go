package rmq_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func TestTagList_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want rmq.TagList
	}{
		{name: "array form", doc: `["administrator","monitoring"]`, want: rmq.TagList{"administrator", "monitoring"}},
		{name: "comma-separated string form", doc: `"administrator,monitoring"`, want: rmq.TagList{"administrator", "monitoring"}},
		{name: "single tag string", doc: `"management"`, want: rmq.TagList{"management"}},
		{name: "empty string", doc: `""`, want: rmq.TagList{}},
		{name: "empty array", doc: `[]`, want: rmq.TagList{}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var tags rmq.TagList
			require.NoError(t, json.Unmarshal([]byte(testCase.doc), &tags))
			assert.Equal(t, testCase.want, tags)
		})
	}
}

func TestFlexInt64_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    int64
		wantErr bool
	}{
		{name: "number", doc: `1234`, want: 1234},
		{name: "numeric string", doc: `"1234"`, want: 1234},
		{name: "null", doc: `null`, want: 0},
		{name: "non-numeric string", doc: `"abc"`, wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var value rmq.FlexInt64

			err := json.Unmarshal([]byte(testCase.doc), &value)
			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, value.Int64())
		})
	}
}

func TestLooseObject_Unmarshal(t *testing.T) {
	t.Parallel()
	t.Run("object", func(t *testing.T) {
		t.Parallel()

		var obj rmq.LooseObject
		require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &obj))
		assert.Equal(t, float64(1), obj["a"])
	})

	t.Run("empty sequence stands in for empty object", func(t *testing.T) {
		t.Parallel()

		var obj rmq.LooseObject
		require.NoError(t, json.Unmarshal([]byte(`[]`), &obj))
		assert.Empty(t, obj)
		assert.NotNil(t, obj)
	})
}

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	assert.True(t, (&rmq.Page[int]{Page: 1, PageCount: 3}).HasNext())
	assert.False(t, (&rmq.Page[int]{Page: 3, PageCount: 3}).HasNext())
	assert.False(t, (&rmq.Page[int]{Page: 1, PageCount: 1}).HasNext())
	assert.False(t, (&rmq.Page[int]{}).HasNext())
}
