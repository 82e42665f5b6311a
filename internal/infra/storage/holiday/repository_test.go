package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectHolidays_OnDateFirstByID(t *testing.T) {
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	query, args, err := selectHolidays(onDate(date), "id ASC").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, holiday_date, status, note FROM holidays WHERE holiday_date = $1 ORDER BY id ASC", query)
	assert.Equal(t, []interface{}{"2024-12-25"}, args)
}

func TestSelectHolidays_FromDateInclusive(t *testing.T) {
	// Смещение зоны не должно сдвигать календарную дату
	from := time.Date(2024, 6, 1, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	query, args, err := selectHolidays(fromDate(from), "holiday_date ASC", "id ASC").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, holiday_date, status, note FROM holidays WHERE holiday_date >= $1 ORDER BY holiday_date ASC, id ASC", query)
	assert.Equal(t, []interface{}{"2024-06-01"}, args)
}

func TestSelectHolidays_All(t *testing.T) {
	query, args, err := selectHolidays(nil, "holiday_date ASC", "id ASC").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, holiday_date, status, note FROM holidays ORDER BY holiday_date ASC, id ASC", query)
	assert.Empty(t, args)
}
