package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "10:00", want: "10:00"},
		{in: "9:30", want: "09:30"},
		{in: "23:59:00", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "10:7", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, MustTimeString("09:30").IsBefore(MustTimeString("10:00")))
	assert.False(t, MustTimeString("10:00").IsBefore(MustTimeString("10:00")))
	assert.False(t, MustTimeString("18:15").IsBefore(MustTimeString("09:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 5, 0, 0, time.UTC)))
	assert.Equal(t, "14:05", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
