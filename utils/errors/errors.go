package errors

import "github.com/muhammadheryan/inventory/constant"

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Is matches any CustomError of the same type, regardless of detail.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetail builds a CustomError whose message replaces the default one for its type.
func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}
