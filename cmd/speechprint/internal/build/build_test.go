package build

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "speechprint dev (unknown)") {
		t.Errorf("String() = %q", s)
	}
	if !strings.HasSuffix(s, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, want platform suffix", s)
	}
}

func TestGet(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	info := Get()
	if info.Version != "v1.2.3" || info.GoVersion != runtime.Version() {
		t.Errorf("Get() = %+v", info)
	}
}
