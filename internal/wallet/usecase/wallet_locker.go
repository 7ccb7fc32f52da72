package usecase

import "sync"

// WalletLocker serialises work on a single wallet inside this process. Locks for
// different wallets are independent and entries are dropped once unused.
type WalletLocker struct {
	mu    sync.Mutex
	locks map[string]*walletLock
}

type walletLock struct {
	mu   sync.Mutex
	refs int
}

// NewWalletLocker creates an empty locker.
func NewWalletLocker() *WalletLocker {
	return &WalletLocker{locks: make(map[string]*walletLock)}
}

// Lock blocks until walletID is free and returns the matching unlock function.
func (l *WalletLocker) Lock(walletID string) (unlock func()) {
	l.mu.Lock()
	wl, ok := l.locks[walletID]
	if !ok {
		wl = &walletLock{}
		l.locks[walletID] = wl
	}
	wl.refs++
	l.mu.Unlock()

	wl.mu.Lock()

	return func() {
		wl.mu.Unlock()

		l.mu.Lock()
		wl.refs--
		if wl.refs == 0 {
			delete(l.locks, walletID)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of wallets currently locked or waited on.
func (l *WalletLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
