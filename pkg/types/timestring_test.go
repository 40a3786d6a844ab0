package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "09:60", "24:00", "0930", "", "09:30:00"} {
		_, err := types.NewTimeStringFromString(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, time.September, 10, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, types.TimeString("14:05"), types.NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	ts := types.TimeString("10:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = types.TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := types.TimeString("10:00")

	next, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), next)

	// Выход за пределы суток - ошибка
	_, err = types.TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)

	// 24:00 недопустимо
	_, err = types.TimeString("23:30").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, types.TimeString("09:00").IsBefore("10:00"))
	assert.False(t, types.TimeString("10:00").IsBefore("10:00"))
	assert.True(t, types.TimeString("10:30").IsAfter("10:00"))
}

func TestTimeString_ValueAndScan(t *testing.T) {
	// Нулевое значение хранится как NULL (full-day бронирование)
	v, err := types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = types.TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	var ts types.TimeString
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	// Postgres возвращает время с секундами
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, types.TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, types.TimeString("08:15"), ts)
}
