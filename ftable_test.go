package skipjack //nolint:testpackage // testing internals

import (
	"encoding/hex"
	"testing"
)

func TestFTable(t *testing.T) {
	expectedHex := "a3d70983f848f6f4b321157899b1aff9e72d4d8ace4cca2e5295d91e4e384428" +
		"0adf02a017f1606812b77ac3e9fa3d5396846bbaf2639a197caee5f5f7166aa2" +
		"39b67b0fc193811beeb41aead0912fb855b9da853f41bfe05a58805f660bd890" +
		"35d5c0a733066569450094566d989b7697fcb2c2b0fedb20e1ebd6e4dd474a1d" +
		"42ed9e6e493ccd4327d207d4dec7671889cb301f8dc68faac874dcc95d5c31a4" +
		"7088612c9f0d2b8750825464267d0340344b1c73d1c4fd3bccfb7fabe63e5ba5" +
		"ad04239c145122f02979717eff8c0ee20cefbc72756f37a1ecd38e628b8610e8" +
		"087711be924f24c532369dcff3a6bbac5e6ca9135725b5e3bda83a0105592a46"
	gotHex := hex.EncodeToString(ftable[:])

	if gotHex != expectedHex {
		t.Errorf("ftable = %s, want %s", gotHex, expectedHex)
	}
}

func TestFTableBijective(t *testing.T) {
	var seen [256]bool
	for i, v := range ftable {
		if seen[v] {
			t.Fatalf("ftable[%d] = %#02x is a duplicate value", i, v)
		}
		seen[v] = true
	}
}
