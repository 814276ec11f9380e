package testx

import (
	"errors"
	"reflect"
	"testing"
)

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %v, have %v", want, have)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErrAs[E error](t *testing.T, err error) E {
	t.Helper()
	var target E
	if errors.As(err, &target) {
		return target
	}
	t.Fatalf("error %v is no %T", err, target)
	return target
}
