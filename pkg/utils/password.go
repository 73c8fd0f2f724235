package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 只认前 72 字节；超出部分截断而不是报错（口令上限 100）
const bcryptMaxBytes = 72

func clip(pw string) []byte {
	b := []byte(pw)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}

// HashPassword 返回 bcrypt 摘要
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(clip(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), clip(pw)) == nil
}
