package database

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere(t *testing.T) {
	assert.Equal(t, "", Where(nil))
	assert.Equal(t, " WHERE a = :a AND b IS NULL", Where([]string{"a = :a", "b IS NULL"}))
}

func TestPage(t *testing.T) {
	tests := []struct {
		page, size int
		want       string
	}{
		{1, 0, ""},
		{3, -1, ""},
		{1, 20, " LIMIT 20 OFFSET 0"},
		{3, 10, " LIMIT 10 OFFSET 20"},
		{0, 10, " LIMIT 10 OFFSET 0"},
		{1 << 62, 8, " LIMIT 8 OFFSET 9223372036854775800"},
		{math.MaxInt, 1, " LIMIT 1 OFFSET 9223372036854775806"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Page(tt.page, tt.size))
	}
}

func TestContains(t *testing.T) {
	assert.Equal(t, "%termo%", Contains("termo"))
	assert.Equal(t, `%100\%%`, Contains("100%"))
	assert.Equal(t, `%a\_b%`, Contains("a_b"))
	assert.Equal(t, `%c:\\tmp%`, Contains(`c:\tmp`))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, " DESC", Direction("DESC"))
	assert.Equal(t, " ASC", Direction("asc"))
	assert.Equal(t, " ASC", Direction("; DROP TABLE productos"))
}
