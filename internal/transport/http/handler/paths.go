package handler

// 路径参数；名字在所有路由里保持一致（gin 要求同一位置通配符同名）
type contactPath struct {
	ContactID string `uri:"contactId"`
}

type addressPath struct {
	ContactID string `uri:"contactId"`
	AddressID string `uri:"addressId"`
}

type userPath struct {
	Username string `uri:"username"`
}

const okBody = "OK"
