package utils

import "math/rand"

const tokenChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const tokenLength = 32

// GenerateRandomToken tạo session token 32 ký tự [A-Za-z0-9].
// Token chỉ là bearer value trả cho client, server không lưu và không verify lại.
func GenerateRandomToken() string {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenChars[rand.Intn(len(tokenChars))]
	}
	return string(b)
}
