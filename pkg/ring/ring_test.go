package ring

import "testing"

func TestBufferEmpty(t *testing.T) {
	rb := NewBuffer[int](4)
	if rb.Len() != 0 {
		t.Fatalf("Len = %d, want 0", rb.Len())
	}
	if _, ok := rb.Last(); ok {
		t.Fatal("Last on empty buffer must report !ok")
	}
	if _, ok := rb.First(); ok {
		t.Fatal("First on empty buffer must report !ok")
	}
}

func TestBufferOverwritesOldest(t *testing.T) {
	rb := NewBuffer[int](2)
	rb.Push(1)
	rb.Push(2)
	rb.Push(3)

	if rb.Len() != 2 {
		t.Fatalf("Len = %d, want 2", rb.Len())
	}
	first, _ := rb.First()
	if first != 2 {
		t.Errorf("First = %d, want 2", first)
	}
	last, _ := rb.Last()
	if last != 3 {
		t.Errorf("Last = %d, want 3", last)
	}
}
