package point

import "testing"

func TestEncodeDecodeFFIndexRoundTrip(t *testing.T) {
	for _, idx := range []int32{0, 1, 7, 42, -1} {
		w := EncodeFFIndex(idx)
		got := DecodeFFIndex(w)
		if got != idx {
			t.Errorf("EncodeFFIndex/DecodeFFIndex(%d) round-trip got %d", idx, got)
		}
	}
}

func TestBufferAppendAt(t *testing.T) {
	buf := NewBuffer(KindWeight, 2)
	p0 := New(1, 2, 3, 0.5)
	p1 := New(4, 5, 6, 1.5)
	buf.Append(p0)
	buf.Append(p1)

	if buf.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", buf.Len())
	}
	if got := buf.At(0); got != p0 {
		t.Errorf("At(0) = %+v, want %+v", got, p0)
	}
	if got := buf.At(1); got != p1 {
		t.Errorf("At(1) = %+v, want %+v", got, p1)
	}
}

func TestNewTruncatesToFloat32(t *testing.T) {
	p := New(1.23456789012345, 0, 0, 0)
	if float64(p.X) == 1.23456789012345 {
		t.Fatal("expected float64->float32 precision loss, got exact value")
	}
}
