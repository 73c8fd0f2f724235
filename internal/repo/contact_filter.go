package repo

import (
	"strings"

	"gorm.io/gorm"

	"go-gin-contacts/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 转义通配符后两侧加 %；mysql / postgres 默认转义符都是反斜杠
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// applyContactFilter 永远限定 username，其余条件只在有值时追加（AND）
func applyContactFilter(q *gorm.DB, username string, f domain.ContactFilter) *gorm.DB {
	q = q.Where("username = ?", username)
	if name := strings.TrimSpace(f.Name); name != "" {
		like := containsPattern(name)
		q = q.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)", like, like)
	}
	if email := strings.TrimSpace(f.Email); email != "" {
		q = q.Where("LOWER(email) LIKE ?", containsPattern(email))
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		q = q.Where("phone LIKE ?", containsPattern(phone))
	}
	return q
}
