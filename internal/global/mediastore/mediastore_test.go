package mediastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "foto.jpg"},
		{"mein bild.jpg", "mein_bild.jpg"},
		{"größe.png", "gr__e.png"},
		{"a/b/c.jpg", "c.jpg"},
		{"../../etc/passwd", "passwd"},
		{"video (1).mp4", "video__1_.mp4"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeName(tc.in), "input: %s", tc.in)
	}
}

func TestStoreSaveBytesAndList(t *testing.T) {
	store := New(t.TempDir(), "/medien/")

	name, url, err := store.SaveBytes("mein bild.jpg", []byte("data"))
	require.NoError(t, err)
	require.Equal(t, "mein_bild.jpg", name)
	require.Equal(t, "/medien/mein_bild.jpg", url)

	// 隐藏文件和子目录不出现在列表里
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir, "sub"), 0o755))

	names, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"mein_bild.jpg"}, names)

	require.NoError(t, store.Remove("mein_bild.jpg"))
	names, err = store.List()
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestStoreModTimeMilli(t *testing.T) {
	store := New(t.TempDir(), "/medien")
	_, _, err := store.SaveBytes("a.jpg", []byte("data"))
	require.NoError(t, err)

	require.Greater(t, store.ModTimeMilli("a.jpg"), int64(0))
	require.EqualValues(t, 0, store.ModTimeMilli("fehlt.jpg"))
}
