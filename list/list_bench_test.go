package list

import (
	"testing"

	"github.com/veloq/arenalist/arena"
)

func BenchmarkAdd(b *testing.B) {
	a, err := arena.New[Node[int]](b.N)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()
	l := New(a)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Add(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValues(b *testing.B) {
	const n = 1024
	a, err := arena.New[Node[int]](n)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	l := New(a)
	for i := 0; i < n; i++ {
		if err := l.Add(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range l.Values() {
			sum += v
		}
		_ = sum
	}
}
