package rmq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("zero values are omitted", func(t *testing.T) {
		t.Parallel()

		values := rmq.NewQueryParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("nil params encode to empty values", func(t *testing.T) {
		t.Parallel()

		var params *rmq.QueryParams

		assert.Empty(t, params.ToValues())
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		values := rmq.NewQueryParams().WithPage(2).WithPageSize(50).ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("page_size"))
	})

	t.Run("name filter carries use_regex", func(t *testing.T) {
		t.Parallel()

		values := rmq.NewQueryParams().WithName("orders").ToValues()
		assert.Equal(t, "orders", values.Get("name"))
		assert.Equal(t, "false", values.Get("use_regex"))

		values = rmq.NewQueryParams().WithRegex("^orders\\..*").ToValues()
		assert.Equal(t, "^orders\\..*", values.Get("name"))
		assert.Equal(t, "true", values.Get("use_regex"))
	})

	t.Run("columns and sorting", func(t *testing.T) {
		t.Parallel()

		params := rmq.NewQueryParams()
		params.Columns = []string{"name", "messages"}
		params.Sort = "messages"
		params.SortReverse = true

		values := params.ToValues()
		assert.Equal(t, "name,messages", values.Get("columns"))
		assert.Equal(t, "messages", values.Get("sort"))
		assert.Equal(t, "true", values.Get("sort_reverse"))
	})
}
