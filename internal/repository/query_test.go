package repository

import (
	"testing"
	"time"

	"blackeagles/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestWindowClause(t *testing.T) {
	ref := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("All", func(t *testing.T) {
		where, args := WindowClause(model.FilterAll.Window(ref), "?")
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("Week - positional", func(t *testing.T) {
		where, args := WindowClause(model.FilterWeek.Window(ref), "?")
		assert.Equal(t, " WHERE event_date >= ? AND event_date <= ?", where)
		assert.Equal(t, []interface{}{"2025-01-05", "2025-01-12"}, args)
	})

	t.Run("Past - numbered", func(t *testing.T) {
		where, args := WindowClause(model.FilterPast.Window(ref), "$")
		assert.Equal(t, " WHERE event_date < $1", where)
		assert.Equal(t, []interface{}{ref}, args)
	})

	t.Run("Month - numbered", func(t *testing.T) {
		where, args := WindowClause(model.FilterMonth.Window(ref), "$")
		assert.Equal(t, " WHERE event_date >= $1 AND event_date <= $2", where)
		assert.Len(t, args, 2)
		assert.Equal(t, time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC), args[1])
	})
}

func TestOrderClause(t *testing.T) {
	assert.Contains(t, OrderClause(model.ScheduleWindow{Ascending: true}), "ASC")
	assert.Contains(t, OrderClause(model.ScheduleWindow{}), "DESC")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%서울%", LikePattern("서울"))
	assert.Equal(t, `%100\%\_a\\b%`, LikePattern(`100%_a\b`))
}
