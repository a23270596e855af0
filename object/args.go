package object

import "github.com/cloudcmds/imp/errors"

// Require checks that a builtin received exactly count arguments.
func Require(funcName string, count int, args []Object) error {
	nArgs := len(args)
	if nArgs != count {
		return errors.New(errors.ArityMismatch,
			"%s() takes exactly %d %s (%d given)",
			funcName, count, pluralize("argument", count != 1), nArgs)
	}
	return nil
}

// RequireRange checks that a builtin received between min and max
// arguments. A negative max means no upper limit.
func RequireRange(funcName string, min, max int, args []Object) error {
	nArgs := len(args)
	if nArgs < min {
		return errors.New(errors.ArityMismatch,
			"%s() takes at least %d %s (%d given)",
			funcName, min, pluralize("argument", min != 1), nArgs)
	} else if max >= 0 && nArgs > max {
		return errors.New(errors.ArityMismatch,
			"%s() takes at most %d %s (%d given)",
			funcName, max, pluralize("argument", max != 1), nArgs)
	}
	return nil
}

func pluralize(s string, do bool) string {
	if do {
		return s + "s"
	}
	return s
}
