package apps

// ArgumentError reports a command line argument that could not be used.
type ArgumentError struct {
	Arg string
	Err error
}

func NewArgumentError(arg string, err error) *ArgumentError {
	return &ArgumentError{Arg: arg, Err: err}
}

func (err *ArgumentError) Error() string {
	if err.Arg == "" {
		return err.Err.Error()
	}
	return "-" + err.Arg + ": " + err.Err.Error()
}

func (err *ArgumentError) Unwrap() error { return err.Err }
