package object

// IsTruthy implements cyber's truthiness rule: NULL and FALSE are falsy,
// every other value (including 0, "", and empty containers) is truthy.
func IsTruthy(v Value) bool {
	switch v {
	case NULL, FALSE:
		return false
	case TRUE:
		return true
	default:
		return true
	}
}

// IsError reports whether v is a propagating *Error.
func IsError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == ERROR_OBJ
}
