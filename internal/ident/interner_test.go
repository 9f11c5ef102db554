package ident_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/ident"
)

func TestIntern_Idempotent(t *testing.T) {
	in := ident.New()

	k1, added1 := in.Intern([]string{"m1", "f"})
	require.True(t, added1)

	k2, added2 := in.Intern([]string{"m1", "f"})
	require.False(t, added2, "second intern of the same path must report not-newly-added")
	require.Equal(t, k1, k2)
}

func TestIntern_DistinctSegmentsDistinctKeys(t *testing.T) {
	in := ident.New()

	k1, _ := in.Intern([]string{"m1", "f"})
	k2, _ := in.Intern([]string{"m1f"})
	k3, _ := in.Intern([]string{"m1", "", "f"})

	require.NotEqual(t, k1, k2)
	require.NotEqual(t, k1, k3)
	require.NotEqual(t, k2, k3)
}

func TestIntern_KeysAreDenseInFirstSeenOrder(t *testing.T) {
	in := ident.New()

	paths := [][]string{{"a"}, {"b"}, {"a", "c"}, {"b"}, {"d"}}
	var keys []ident.Key
	for _, p := range paths {
		k, _ := in.Intern(p)
		keys = append(keys, k)
	}

	require.Equal(t, ident.Key(0), keys[0])
	require.Equal(t, ident.Key(1), keys[1])
	require.Equal(t, ident.Key(2), keys[2])
	require.Equal(t, keys[1], keys[3], "re-interning \"b\" must return the same key")
	require.Equal(t, ident.Key(3), keys[4])
	require.Equal(t, 4, in.Len())
}

func TestLookupKey(t *testing.T) {
	in := ident.New()
	_, _ = in.Intern([]string{"x", "y"})

	k, ok := in.LookupKey([]string{"x", "y"})
	require.True(t, ok)

	_, ok = in.LookupKey([]string{"x", "z"})
	require.False(t, ok)

	seg := in.LookupSegments(k)
	require.Equal(t, ident.Absolute{"x", "y"}, seg)
}

func TestLookupSegments_UnknownKey(t *testing.T) {
	in := ident.New()
	require.Nil(t, in.LookupSegments(ident.Key(42)))
}

func TestAbsoluteString(t *testing.T) {
	root := ident.Absolute{}
	require.Equal(t, "", root.String())

	m := ident.Absolute{"somelib", "module1"}
	require.Equal(t, "somelib.module1", m.String())

	child := m.Child("f")
	require.Equal(t, ident.Absolute{"somelib", "module1", "f"}, child)
}

func TestHash_StableAndSegmentSensitive(t *testing.T) {
	h1 := ident.Hash([]string{"a", "b"})
	h2 := ident.Hash([]string{"a", "b"})
	h3 := ident.Hash([]string{"ab"})

	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}

func TestIntern_NFCNormalizesSegments(t *testing.T) {
	in := ident.New()

	// "café" composed (NFC) vs. "e" + combining acute accent (NFD):
	// byte-distinct spellings of the same identifier.
	nfc := "café"
	nfd := "café"
	require.NotEqual(t, nfc, nfd, "test fixture must be byte-distinct")

	k1, added1 := in.Intern([]string{nfc})
	require.True(t, added1)

	k2, added2 := in.Intern([]string{nfd})
	require.False(t, added2, "NFC and NFD spellings of the same identifier must dedup to one key")
	require.Equal(t, k1, k2)

	require.Equal(t, ident.Absolute{nfc}, in.LookupSegments(k1))
}

func TestLookupKey_NFCNormalizesSegments(t *testing.T) {
	in := ident.New()
	_, _ = in.Intern([]string{"café"})

	_, ok := in.LookupKey([]string{"café"})
	require.True(t, ok)
}

func TestHash_NFCNormalizesSegments(t *testing.T) {
	require.Equal(t, ident.Hash([]string{"café"}), ident.Hash([]string{"café"}))
}
