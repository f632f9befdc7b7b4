package dyn

import "testing"

func BenchmarkPushBackGrowing(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := New[int]()
		for j := 0; j < 1024; j++ {
			a.PushBack(j)
		}
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := New[int]()
		a.Reserve(1024)
		for j := 0; j < 1024; j++ {
			a.PushBack(j)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	a := New[int]()
	a.Reserve(1024)
	for j := 0; j < 1023; j++ {
		a.PushBack(j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Insert(0, i)
		a.Erase(0)
	}
}

func BenchmarkEraseMiddle(b *testing.B) {
	a := New[int]()
	for j := 0; j < 1024; j++ {
		a.PushBack(j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Erase(512)
		a.Insert(512, i)
	}
}
