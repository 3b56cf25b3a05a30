// Command skipjack encrypts or decrypts hex-encoded 8-byte blocks in codebook mode, one block per line, from stdin to
// stdout.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/skipjack"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "", "the key as 20 hex digits")
	decrypt := flag.Bool("decrypt", false, "decrypt blocks instead of encrypting them")
	flag.Parse()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		panic(err)
	}

	cipher, err := skipjack.New(key)
	if err != nil {
		panic(err)
	}

	mode := "encrypt"
	if *decrypt {
		mode = "decrypt"
	}
	log.Info("processing blocks", "mode", mode)

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer func() {
		_ = out.Flush()
	}()

	for in.Scan() {
		block, err := hex.DecodeString(in.Text())
		if err != nil {
			log.Error("invalid hex block", "err", err)
			os.Exit(1)
		}
		if len(block) != skipjack.BlockSize {
			log.Error("invalid block size", "len", len(block), "want", skipjack.BlockSize)
			os.Exit(1)
		}

		if *decrypt {
			cipher.Decrypt(block, block)
		} else {
			cipher.Encrypt(block, block)
		}

		_, _ = fmt.Fprintf(out, "%x\n", block)
	}
	if err := in.Err(); err != nil {
		panic(err)
	}
}
