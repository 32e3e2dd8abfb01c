package store

import "testing"

func TestPushKeysUniqueAndAscending(t *testing.T) {
	const n = 1000
	prev := ""
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		k := NewPushKey()
		if len(k) != 20 {
			t.Fatalf("key %q has length %d, want 20", k, len(k))
		}
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
		if k <= prev {
			t.Fatalf("key %q not greater than previous %q", k, prev)
		}
		prev = k
	}
}

func TestPushKeyAlphabet(t *testing.T) {
	k := NewPushKey()
	for i := 0; i < len(k); i++ {
		found := false
		for j := 0; j < len(pushChars); j++ {
			if k[i] == pushChars[j] {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("key %q contains byte %q outside alphabet", k, k[i])
		}
	}
}
