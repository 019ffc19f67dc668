package kcm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// esc builds the expected escape for a hex code point.
func esc(hex string) string {
	return `\` + "u" + hex
}

func TestUnicodeEscape(t *testing.T) {
	require.Equal(t, "abc", UnicodeEscape("abc"))
	require.Equal(t, "", UnicodeEscape(""))
	require.Equal(t, esc("0439"), UnicodeEscape("й"))
	require.Equal(t, esc("0419"), UnicodeEscape("Й"))
	require.Equal(t, esc("00ab"), UnicodeEscape("«"))
	require.Equal(t, esc("20ac"), UnicodeEscape("€"))
	require.Equal(t, esc("0644")+esc("0627"), UnicodeEscape("لا"))
	require.Equal(t, "a"+esc("00e2")+"b", UnicodeEscape("aâb"))
	require.Equal(t, esc("1d11e"), UnicodeEscape(string(rune(0x1d11e))))
	require.Equal(t, `\`, UnicodeEscape(`\`))
	require.Equal(t, string(rune(0x7f)), UnicodeEscape(string(rune(0x7f))))
	require.Equal(t, esc("0080"), UnicodeEscape(string(rune(0x80))))
}
