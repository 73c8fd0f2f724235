package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-gin-contacts/internal/domain"
)

func filterSQL(t *testing.T, f domain.ContactFilter) string {
	t.Helper()
	db, _ := newMockDB(t)
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return applyContactFilter(tx.Model(&domain.Contact{}), "alice", f).Find(&[]domain.Contact{})
	})
}

func TestApplyContactFilter_OwnerOnly(t *testing.T) {
	sql := filterSQL(t, domain.ContactFilter{})
	assert.Contains(t, sql, "username = 'alice'")
	assert.NotContains(t, sql, "LIKE")
}

func TestApplyContactFilter_Combinations(t *testing.T) {
	tests := []struct {
		name    string
		f       domain.ContactFilter
		want    []string
		notWant []string
	}{
		{
			name:    "name matches first or last",
			f:       domain.ContactFilter{Name: "Joe"},
			want:    []string{"(LOWER(first_name) LIKE '%joe%' OR LOWER(last_name) LIKE '%joe%')"},
			notWant: []string{"email", "phone"},
		},
		{
			name:    "email only",
			f:       domain.ContactFilter{Email: "Gmail"},
			want:    []string{"LOWER(email) LIKE '%gmail%'"},
			notWant: []string{"first_name", "phone"},
		},
		{
			name:    "phone only",
			f:       domain.ContactFilter{Phone: "0812"},
			want:    []string{"phone LIKE '%0812%'"},
			notWant: []string{"first_name", "email"},
		},
		{
			name: "all filters are ANDed",
			f:    domain.ContactFilter{Name: "joe", Email: "x", Phone: "1"},
			want: []string{
				"username = 'alice' AND (LOWER(first_name)",
				"AND LOWER(email) LIKE '%x%' AND phone LIKE '%1%'",
			},
		},
		{
			name:    "blank filter ignored",
			f:       domain.ContactFilter{Name: "   "},
			notWant: []string{"LIKE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := filterSQL(t, tt.f)
			assert.Contains(t, sql, "username = 'alice'")
			for _, w := range tt.want {
				assert.Contains(t, sql, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, sql, nw)
			}
		})
	}
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%joe%`, containsPattern("JOE"))
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\tmp%`, containsPattern(`c:\tmp`))
}
