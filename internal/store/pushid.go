package store

import (
	"math/rand"
	"sync"
	"time"
)

// Alfabet 64 karakter, urut secara byte-order supaya key bisa dibandingkan
// sebagai string (format push id ala RTDB).
const pushChars = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

var pushMu struct {
	sync.Mutex
	lastMs   int64
	lastRand [12]int
}

// NewPushKey menghasilkan storage key 20 karakter: 8 karakter timestamp (ms)
// + 12 karakter random. Kalau dipanggil dua kali di milidetik yang sama,
// bagian random di-increment supaya key tetap naik dalam satu proses.
func NewPushKey() string {
	pushMu.Lock()
	defer pushMu.Unlock()

	now := time.Now().UnixMilli()
	sameMs := now == pushMu.lastMs
	pushMu.lastMs = now

	var b [20]byte
	for i := 7; i >= 0; i-- {
		b[i] = pushChars[now%64]
		now /= 64
	}

	if sameMs {
		i := 11
		for ; i >= 0 && pushMu.lastRand[i] == 63; i-- {
			pushMu.lastRand[i] = 0
		}
		if i >= 0 {
			pushMu.lastRand[i]++
		}
	} else {
		for i := range pushMu.lastRand {
			pushMu.lastRand[i] = rand.Intn(64)
		}
	}
	for i, r := range pushMu.lastRand {
		b[8+i] = pushChars[r]
	}
	return string(b[:])
}
