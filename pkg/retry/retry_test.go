package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBusy = errors.New("database is locked")

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	var retried []int

	r := New(
		WithDelays(time.Millisecond, time.Millisecond),
		WithOnRetry(func(attempt int, _ error, _ time.Duration) { retried = append(retried, attempt) }),
	)
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errBusy
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_GivesUp(t *testing.T) {
	calls := 0
	err := New(WithMaxAttempts(2), WithDelays(0, 0)).Do(context.Background(), func(context.Context) error {
		calls++
		return errBusy
	})

	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 2, calls)
}

func TestDo_PermanentAndFiltered(t *testing.T) {
	other := errors.New("constraint failed")

	calls := 0
	err := New().Do(context.Background(), func(context.Context) error {
		calls++
		return Permanent(errBusy)
	})
	assert.Equal(t, errBusy, err)
	assert.Equal(t, 1, calls)

	calls = 0
	err = StorageRetrier(func(err error) bool { return errors.Is(err, errBusy) }).
		Do(context.Background(), func(context.Context) error {
			calls++
			return other
		})
	assert.Equal(t, other, err)
	assert.Equal(t, 1, calls)
}

func TestDo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := New().Do(ctx, func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDelay_Capped(t *testing.T) {
	r := New(WithDelays(10*time.Millisecond, 30*time.Millisecond), WithJitter(0))
	assert.Equal(t, 10*time.Millisecond, r.delay(1))
	assert.Equal(t, 20*time.Millisecond, r.delay(2))
	assert.Equal(t, 30*time.Millisecond, r.delay(3))
}
