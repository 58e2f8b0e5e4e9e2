package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigLoad, "failed to load")

	if err.Code != ErrConfigLoad {
		t.Errorf("New() code = %v, want %v", err.Code, ErrConfigLoad)
	}
	if err.Error() != "[CONFIG_LOAD] failed to load" {
		t.Errorf("New() error = %q", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidName, "bad name %q", "a/b")

	want := `[INVALID_NAME] bad name "a/b"`
	if err.Error() != want {
		t.Errorf("Newf() error = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := Wrap(inner, ErrConfigSave, "failed to save")

	if !errors.Is(err, inner) {
		t.Error("Wrap() lost the wrapped error")
	}
	if err.Error() != "[CONFIG_SAVE] failed to save: disk full" {
		t.Errorf("Wrap() error = %q", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, ErrConfigSave, "msg"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := Wrapf(nil, ErrConfigSave, "msg %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(ErrRootAssign, "one message")
	target := New(ErrRootAssign, "another message")

	if !errors.Is(err, target) {
		t.Error("errors.Is should match SectconfErrors by code")
	}

	other := New(ErrNotFound, "one message")
	if errors.Is(err, other) {
		t.Error("errors.Is should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", New(ErrConfigLoad, "x"), ErrConfigLoad, true},
		{"different code", New(ErrConfigLoad, "x"), ErrConfigSave, false},
		{"wrapped sectconf error", fmt.Errorf("outer: %w", New(ErrRegister, "x")), ErrRegister, true},
		{"plain error", fmt.Errorf("plain"), ErrConfigLoad, false},
		{"nil error", nil, ErrConfigLoad, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(New(ErrExportFormat, "x")); got != ErrExportFormat {
		t.Errorf("GetErrorCode() = %v, want %v", got, ErrExportFormat)
	}
	if got := GetErrorCode(fmt.Errorf("plain")); got != ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrConfigSave, "failed").WithDetail("path", "/cfg/app.ini")

	if err.Details["path"] != "/cfg/app.ini" {
		t.Errorf("WithDetail() details = %v", err.Details)
	}
}
