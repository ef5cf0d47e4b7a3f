package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	type fields struct {
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
	}
	tests := []struct {
		name   string
		fields fields
	}{
		{
			name: "open, half-open, closed",
			fields: fields{
				recordLength:     10,
				timeout:          2 * time.Second,
				percentile:       0.30,
				recoveryRequests: 5,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
			cb := newCircuitBreaker(tt.fields.recordLength, tt.fields.timeout, tt.fields.percentile, tt.fields.recoveryRequests, clock.now)

			for i := 0; i < 20; i++ {
				require.NoError(t, cb.Call(successfulService))
			}
			require.Equal(t, Closed, cb.State())

			// 3 of 10 failures reach the 30% threshold
			for i := 0; i < 3; i++ {
				require.ErrorIs(t, cb.Call(failingService), errService)
			}
			require.Equal(t, Open, cb.State())
			require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)

			clock.t = clock.t.Add(3 * time.Second)
			require.NoError(t, cb.Call(successfulService))
			require.Equal(t, HalfOpen, cb.State())

			// a failure in half-open trips again
			require.ErrorIs(t, cb.Call(failingService), errService)
			require.Equal(t, Open, cb.State())

			clock.t = clock.t.Add(3 * time.Second)
			for i := 0; i < tt.fields.recoveryRequests; i++ {
				require.NoError(t, cb.Call(successfulService))
			}
			require.Equal(t, Closed, cb.State())
		})
	}
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(2, time.Minute, 0.5, 1)
	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
