package tensor

import (
	"fmt"
	"testing"
)

func TestZeros(t *testing.T) {
	backend := NewMockBackend()
	tensor := Zeros[float32](Shape{2, 3}, backend)

	assertEqualShape(t, Shape{2, 3}, tensor.Shape(), "Zeros shape")

	for i, v := range tensor.Data() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestOnes(t *testing.T) {
	backend := NewMockBackend()
	tensor := Ones[float64](Shape{3, 2}, backend)

	assertEqualShape(t, Shape{3, 2}, tensor.Shape(), "Ones shape")

	for i, v := range tensor.Data() {
		if v != 1 {
			t.Errorf("element %d = %v, want 1", i, v)
		}
	}
}

func TestFull(t *testing.T) {
	backend := NewMockBackend()
	tensor := Full[float32](Shape{2, 2}, 3.14, backend)

	for i, v := range tensor.Data() {
		assertEqualFloat32(t, 3.14, v, fmt.Sprintf("Full[%d]", i))
	}
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()
	tensor := Arange[int32](0, 5, backend)

	assertEqualShape(t, Shape{5}, tensor.Shape(), "Arange shape")

	for i, v := range tensor.Data() {
		if v != int32(i) {
			t.Errorf("element %d = %v, want %d", i, v, i)
		}
	}
}

func TestArangeFromOffset(t *testing.T) {
	backend := NewMockBackend()
	tensor := Arange[float32](2, 6, backend)

	expected := []float32{2, 3, 4, 5}
	got := tensor.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], "Arange offset")
	}
}

func TestArangeInvalidRange(t *testing.T) {
	backend := NewMockBackend()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Arange with end <= start should panic")
		}
	}()
	Arange[int32](5, 5, backend)
}
