package kcm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveLocale(t *testing.T) {
	m := Resolve("ru", "Q")
	require.Equal(t, "й", m.Base)
	require.Equal(t, "Й", m.Shift)
	require.Equal(t, "0", m.Alt)
	require.Equal(t, "~", m.Sym)
	require.Equal(t, SourceLocale, m.Source)

	m = Resolve("ru_translit", "Q")
	require.Equal(t, "я", m.Base)
	require.Equal(t, SourceLocale, m.Source)

	m = Resolve("ar", "B")
	require.Equal(t, "لا", m.Base)
	require.Equal(t, "!", m.Alt)
}

func TestResolveLanguagePrefix(t *testing.T) {
	m := Resolve("hy_AM", "Q")
	require.Equal(t, "ք", m.Base)
	require.Equal(t, "Ք", m.Shift)
	require.Equal(t, SourceLanguage, m.Source)

	m = Resolve("ru_RU", "Q")
	require.Equal(t, "й", m.Base)
	require.Equal(t, SourceLanguage, m.Source)
	require.Equal(t, "ru", LanguagePrefix("ru_RU"))
	require.Equal(t, "fil", LanguagePrefix("fil"))
}

func TestResolveLatinFallback(t *testing.T) {
	m := Resolve("fr", "A")
	require.Equal(t, "a", m.Base)
	require.Equal(t, "A", m.Shift)
	require.Equal(t, "#", m.Alt)
	require.Equal(t, "_", m.Sym)
	require.Equal(t, SourceLatin, m.Source)

	m = Resolve("tr", "I")
	require.Equal(t, "i", m.Base)
	require.Equal(t, "I", m.Shift)

	m = Resolve("", "K")
	require.Equal(t, "k", m.Base)
	require.Equal(t, "«", m.Sym)
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "Russian", LanguageName("ru"))
	require.Equal(t, "Norwegian Bokmål", LanguageName("nb"))
	require.Equal(t, "xx_YY", LanguageName("xx_YY"))
}

func TestCharacterTablesComplete(t *testing.T) {
	base, err := GetLayout(QWERTY)
	require.Nil(t, err)
	for _, name := range CharacterTableNames() {
		table, ok := CharacterTable(name)
		require.True(t, ok)
		require.Len(t, table, 26, name)
		for _, label := range base {
			pair, ok := table[label]
			require.True(t, ok, "%s missing %s", name, label)
			require.NotEmpty(t, pair.Base)
			require.NotEmpty(t, pair.Shift)
		}
	}
	for _, label := range base {
		_, ok := AltSymFor(label)
		require.True(t, ok, "alt/sym missing %s", label)
	}
}

func TestHasCharacterTable(t *testing.T) {
	require.True(t, HasCharacterTable("ru"))
	require.True(t, HasCharacterTable("ta_IN"))
	require.False(t, HasCharacterTable("en_US"))
}

func TestCharacterTableCopy(t *testing.T) {
	table, ok := CharacterTable("el")
	require.True(t, ok)
	table["E"] = CharPair{"x", "X"}
	require.Equal(t, "ε", Resolve("el", "E").Base)

	_, ok = CharacterTable("en")
	require.False(t, ok)

	names := LanguageNames()
	names["ru"] = "changed"
	require.Equal(t, "Russian", LanguageName("ru"))
}
