package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"小写化", "Haarfarbe", "haarfarbe"},
		{"空格折叠为连字符", "Körbchen Größe", "koerbchen-groesse"},
		{"德语变音转写", "Größe", "groesse"},
		{"ä 转写", "Nationalität", "nationalitaet"},
		{"ü 转写", "Künstlername", "kuenstlername"},
		{"连续特殊字符只折叠一次", "Preis / Stunde", "preis-stunde"},
		{"首尾连字符去除", "  --Alter--  ", "alter"},
		{"数字保留", "Feld 123", "feld-123"},
		{"纯特殊字符结果为空", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyMaxLength(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := Slugify(long)
	require.Len(t, got, maxSlugLen)

	// 截断后末尾不能留下悬挂的连字符
	got = Slugify(strings.Repeat("ab ", 30))
	require.LessOrEqual(t, len(got), maxSlugLen)
	require.False(t, strings.HasSuffix(got, "-"))
}
