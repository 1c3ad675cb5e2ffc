package tools

import "golang.org/x/crypto/bcrypt"

// PasswordHash 生成 bcrypt 密码哈希
func PasswordHash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// PasswordCompare 校验明文密码与哈希是否匹配
func PasswordCompare(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
