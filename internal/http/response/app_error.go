package response

// AppError 处理器错误：业务码 + 文案 key + 本地化文案 + 原始错误
type AppError struct {
	Code    int
	Key     string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Key
	}
	return e.Key + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal 是否为需要记录日志的服务端错误
func (e *AppError) Internal() bool {
	return e.Code >= CodeInternal || e.Err != nil
}

// NewAppError 构造处理器错误
func NewAppError(code int, key, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Key:     key,
		Message: message,
		Err:     err,
	}
}
