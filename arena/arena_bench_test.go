package arena

import "testing"

func BenchmarkAlloc(b *testing.B) {
	a, err := New[record](b.N)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Alloc(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	a, err := New[record](1)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	ref, err := a.Alloc()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Get(ref).value++
	}
}
