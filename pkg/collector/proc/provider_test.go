package proc

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
)

func TestIsGone(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"notRunning", process.ErrorProcessNotRunning, true},
		{"esrch", syscall.ESRCH, true},
		{"wrappedEsrch", fmt.Errorf("reading stat: %w", syscall.ESRCH), true},
		{"notExist", fs.ErrNotExist, true},
		{"permission", syscall.EPERM, false},
		{"other", errors.New("parse failure"), false},
	}
	for _, tc := range cases {
		if got := IsGone(tc.err); got != tc.expected {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestIsDenied(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"eperm", syscall.EPERM, true},
		{"eacces", syscall.EACCES, true},
		{"wrappedEacces", fmt.Errorf("opening status: %w", syscall.EACCES), true},
		{"fsPermission", fs.ErrPermission, true},
		{"gone", syscall.ESRCH, false},
		{"other", errors.New("parse failure"), false},
	}
	for _, tc := range cases {
		if got := IsDenied(tc.err); got != tc.expected {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}
