package response

// Paging 仅搜索接口返回；currentPage 从 0 开始
type Paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// WebResponse data 与 errors 互斥
type WebResponse struct {
	Data   any     `json:"data"`
	Errors *string `json:"errors"`
	Paging *Paging `json:"paging,omitempty"`
}

// OK 成功响应
func OK(data any) WebResponse {
	return WebResponse{Data: data}
}

// Paged 带分页信息的成功响应（保证 data 不为 null）
func Paged[T any](items []T, p Paging) WebResponse {
	if items == nil {
		items = []T{}
	}
	return WebResponse{Data: items, Paging: &p}
}

// Error 失败响应（可以传自定义 msg 覆盖默认）
func Error(code int, customMsg string) WebResponse {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return WebResponse{Errors: &msg}
}
