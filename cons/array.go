package cons

import (
	"os"

	"go.uber.org/multierr"
)

// MapSlice calls f with a pointer to every element of s, so f may
// update elements in place.
func MapSlice[T any](s []T, f func(*T)) {
	for i := range s {
		f(&s[i])
	}
}

// WithOpenFile opens name, hands the file to fn and closes it whatever
// fn returns. Errors from fn and from Close are both reported.
func WithOpenFile(name string, flag int, perm os.FileMode, fn func(*os.File) error) (err error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return fn(f)
}
