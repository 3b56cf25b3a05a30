package skipjack

// g is the key-dependent permutation on 16-bit words: a four-round Feistel
// cipher over the word's two bytes, each round substituting through the F
// table and folding in one byte of the key. Round j of counter k consumes
// key[(4*(k-1)+j) % 10]; the 10-byte key is cycled directly, never expanded.
func g(k, w uint16, key *[KeySize]byte) uint16 {
	g1, g2 := byte(w>>8), byte(w)

	g3 := ftable[g2^key[(4*(k-1))%10]] ^ g1
	g4 := ftable[g3^key[(4*(k-1)+1)%10]] ^ g2
	g5 := ftable[g4^key[(4*(k-1)+2)%10]] ^ g3
	g6 := ftable[g5^key[(4*(k-1)+3)%10]] ^ g4

	return uint16(g5)<<8 | uint16(g6)
}

// gInv is the structural inverse of g: the same four rounds run in reverse
// order with the byte roles swapped, so gInv(k, g(k, w, key), key) == w.
func gInv(k, w uint16, key *[KeySize]byte) uint16 {
	g5, g6 := byte(w>>8), byte(w)

	g4 := ftable[g5^key[(4*(k-1)+3)%10]] ^ g6
	g3 := ftable[g4^key[(4*(k-1)+2)%10]] ^ g5
	g2 := ftable[g3^key[(4*(k-1)+1)%10]] ^ g4
	g1 := ftable[g2^key[(4*(k-1))%10]] ^ g3

	return uint16(g1)<<8 | uint16(g2)
}

// ruleA is the stepping rule for counters 1-8 and 17-24:
//
//	w1' = G(w1) ^ w4 ^ k    w2' = G(w1)    w3' = w2    w4' = w3
func ruleA(w *[4]uint16, k uint16, key *[KeySize]byte) {
	gw := g(k, w[0], key)
	w[0], w[1], w[2], w[3] = gw^w[3]^k, gw, w[1], w[2]
}

// ruleB is the stepping rule for counters 9-16 and 25-32:
//
//	w1' = w4    w2' = G(w1)    w3' = w1 ^ w2 ^ k    w4' = w3
func ruleB(w *[4]uint16, k uint16, key *[KeySize]byte) {
	w[0], w[1], w[2], w[3] = w[3], g(k, w[0], key), w[0]^w[1]^k, w[2]
}

// ruleAInv undoes ruleA for counter k:
//
//	w1' = G'(w2)    w2' = w3    w3' = w4    w4' = w1 ^ w2 ^ k
func ruleAInv(w *[4]uint16, k uint16, key *[KeySize]byte) {
	w[0], w[1], w[2], w[3] = gInv(k, w[1], key), w[2], w[3], w[0]^w[1]^k
}

// ruleBInv undoes ruleB for counter k:
//
//	w1' = G'(w2)    w2' = G'(w2) ^ w3 ^ k    w3' = w4    w4' = w1
func ruleBInv(w *[4]uint16, k uint16, key *[KeySize]byte) {
	gw := gInv(k, w[1], key)
	w[0], w[1], w[2], w[3] = gw, gw^w[2]^k, w[3], w[0]
}
