package utils

import "github.com/google/uuid"

// NewID 生成主键（contact / address），带连字符的标准 UUID
func NewID() string { return uuid.NewString() }

// NewToken 生成不透明的 API token，仅作查找键使用
func NewToken() string { return uuid.NewString() }
