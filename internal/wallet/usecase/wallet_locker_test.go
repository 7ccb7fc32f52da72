package usecase_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/walletkeys/internal/wallet/usecase"
)

func TestWalletLocker_SerialisesSameWallet(t *testing.T) {
	locks := usecase.NewWalletLocker()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		maxSeen atomic.Int32
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("wallet-1")
			defer unlock()

			n := active.Add(1)
			for {
				m := maxSeen.Load()
				if n <= m || maxSeen.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Equal(t, 0, locks.Len())
}

func TestWalletLocker_IndependentWallets(t *testing.T) {
	locks := usecase.NewWalletLocker()

	unlockA := locks.Lock("wallet-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("wallet-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on wallet-b blocked behind wallet-a")
	}
	assert.Equal(t, 1, locks.Len())
}
