package device

import "testing"

func TestErrNoErrors(t *testing.T) {
	d := newFakeDriver()
	if err := Err(d); err != nil {
		t.Errorf("expected nil error on a clean driver, got %v", err)
	}
}

func TestErrDrainsAllQueuedCodes(t *testing.T) {
	d := newFakeDriver()
	d.errQueue = []Enum{0x0501, 0x0502}
	err := Err(d)
	if err == nil {
		t.Fatal("expected a non-nil joined error")
	}
	errs, ok := err.(glErrors)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 drained errors, got %v", err)
	}
	if d.GetError() != 0 {
		t.Error("Err must drain the queue completely")
	}
}

func TestErrBoundedDrain(t *testing.T) {
	d := newFakeDriver()
	for i := 0; i < 100; i++ {
		d.errQueue = append(d.errQueue, 0x0500)
	}
	err := Err(d)
	errs := err.(glErrors)
	if len(errs) != 16 {
		t.Errorf("expected the drain to stop at the 16-error cap, got %d", len(errs))
	}
}
