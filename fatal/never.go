package fatal

// Never is an error that cannot occur.
//
// It has no constructor and no value of it is ever created; it exists so
// that code generic over an error type E can declare a fallible signature
// while a particular implementation is infallible. Use Error[Never] (or a
// nil *Error[Never]) as the error channel of such an implementation: the
// channel type-checks like any other, and every branch that would handle it
// is dead by contract.
//
// Go has no uninhabited types — the zero value of any struct is always
// expressible — so the "no instance ever exists" guarantee is a documented
// contract rather than a compiler proof. Error panics as the unreachable
// arm to keep the contract honest.
type Never struct{ _ struct{} }

var _ error = Never{}

func (Never) Error() string {
	panic("fatal: Never error rendered; no value of Never may be constructed")
}
