package diagnostics

// Abort immediately unwinds the current Catch scope, surfacing err as the
// sole diagnostic. This is the "checked exception" shape spec §4.2/§9
// leaves implementation-free: a typed panic that Catch recovers and
// nothing else does, so a genuine compiler bug (a plain panic from an
// exhaustiveness check or an assertion) still terminates the process
// instead of being silently swallowed.
//
// Every checker routine that wants to report a user error calls Abort
// instead of returning one; callers never need to thread an error value
// through every return path by hand, matching the "once any checker
// routine emits a user error, no further work is performed" contract.
func Abort(err *Error) {
	panic(abortSignal{err: err})
}

type abortSignal struct {
	err *Error
}

// Catch runs f and recovers an Abort signal raised anywhere underneath it,
// returning the diagnostic that was raised (nil on success). Panics that
// are not an Abort signal propagate unchanged, terminating the compiler.
func Catch(f func()) (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(abortSignal)
			if !ok {
				panic(r)
			}
			err = sig.err
		}
	}()
	f()
	return nil
}
