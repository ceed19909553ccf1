package bls12377

import "testing"

func TestAlphaIsThree(t *testing.T) {
	if Alpha != 3 {
		t.Fatalf("Alpha = %d, want 3", Alpha)
	}
	if Params.Alpha != 3 {
		t.Fatalf("Params.Alpha = %d, want 3", Params.Alpha)
	}
}

func TestHashBytesIsDeterministic(t *testing.T) {
	a := HashBytes([]byte("alpha three"))
	b := HashBytes([]byte("alpha three"))
	if !a.Equal(b) {
		t.Fatal("HashBytes is not deterministic")
	}
}
