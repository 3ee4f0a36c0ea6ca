package output

import (
	"io"
	"os"
)

// Values accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled reports whether output written to w should be styled.
// ColorAuto styles terminals unless NO_COLOR is set; unknown modes behave
// like ColorAuto.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTTY(w)
}

// IsTTY reports whether w is a character device such as a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
