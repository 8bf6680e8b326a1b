// slpmeta encodes SLP token metadata into OP_RETURN script payloads.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ledgerforge/slpmeta/internal/log"
	"github.com/ledgerforge/slpmeta/pkg/slp"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	logLevel := "info"
	jsonLogs := false
	logFile := ""

	// Scan for --log-level, --json-logs, and --log-file before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			jsonLogs = true
			args = args[1:]
		case args[0] == "--log-file" && len(args) > 1:
			logFile = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-file="):
			logFile = args[0][len("--log-file="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if err := log.Init(logLevel, jsonLogs, logFile); err != nil {
		fatal("init logging: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "genesis":
		cmdGenesis(cmdArgs)
	case "mint":
		cmdMint(cmdArgs)
	case "send":
		cmdSend(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: slpmeta [global flags] <command> [flags]

Global flags:
  --log-level <lvl>   debug, info, warn or error (default: info)
  --json-logs         Emit JSON logs instead of colored console output
  --log-file <path>   Also append JSON logs to a file

Commands:
  genesis --ticker <T> --name <n> --qty <n> [flags]
                                  Encode a GENESIS message (create a token)
  mint --token <id> --qty <n> [flags]
                                  Encode a MINT message (further issuance)
  send --token <id> --qty <n>[,<n>...] [flags]
                                  Encode a SEND message (transfer)

The encoded script is written to stdout as hex, ready to embed in a
zero-value transaction output. Diagnostics go to stderr.

Token types (--type): fungible (default), group, child

genesis flags:
  --type <t>          Token type
  --ticker <T>        Ticker symbol, e.g. USDT
  --name <n>          Human-readable token name
  --doc-url <url>     Document URL
  --doc-hash <hex>    32-byte document hash (hex)
  --decimals <n>      Decimal places, 0-9 (default: 0)
  --baton <vout>      Mint baton output index, 2-255 (default: none)
  --qty <n>           Initial quantity in base units (required)

mint flags:
  --type <t>          Token type
  --token <id>        Token ID (32-byte hex, required)
  --baton <vout>      Mint baton output index, 2-255 (default: none)
  --qty <n>           Quantity to issue in base units (required)

send flags:
  --type <t>          Token type
  --token <id>        Token ID (32-byte hex, required)
  --qty <list>        Comma-separated output amounts, at most 19 (required)
`)
}

// ── genesis ─────────────────────────────────────────────────────────────

func cmdGenesis(args []string) {
	fs := flag.NewFlagSet("genesis", flag.ExitOnError)
	typeStr := fs.String("type", "fungible", "Token type: fungible, group or child")
	ticker := fs.String("ticker", "", "Ticker symbol")
	name := fs.String("name", "", "Token name")
	docURL := fs.String("doc-url", "", "Document URL")
	docHash := fs.String("doc-hash", "", "32-byte document hash (hex)")
	decimals := fs.Int("decimals", 0, "Decimal places (0-9)")
	baton := fs.Int("baton", 0, "Mint baton output index (2-255, 0 = none)")
	qtyStr := fs.String("qty", "", "Initial quantity in base units")
	fs.Parse(args)

	if *qtyStr == "" {
		fatal("Usage: slpmeta genesis --ticker <T> --name <n> --qty <n> [flags]")
	}

	typ, err := parseTokenType(*typeStr)
	if err != nil {
		fatal("%v", err)
	}
	quantity, err := slp.ParseQuantity(*qtyStr)
	if err != nil {
		fatal("invalid --qty: %v", err)
	}

	var vout *int
	if *baton != 0 {
		vout = baton
	}

	logger := log.WithComponent("genesis")
	logger.Debug().
		Str("type", typ.String()).
		Str("ticker", *ticker).
		Int("decimals", *decimals).
		Msg("encoding")

	msg, err := slp.Genesis(typ, *ticker, *name, *docURL, slp.HexText(*docHash), *decimals, vout, quantity)
	if err != nil {
		fatal("genesis: %v", err)
	}

	emit(msg)
}

// ── mint ────────────────────────────────────────────────────────────────

func cmdMint(args []string) {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)
	typeStr := fs.String("type", "fungible", "Token type: fungible, group or child")
	tokenID := fs.String("token", "", "Token ID (32-byte hex)")
	baton := fs.Int("baton", 0, "Mint baton output index (2-255, 0 = none)")
	qtyStr := fs.String("qty", "", "Quantity to issue in base units")
	fs.Parse(args)

	if *tokenID == "" || *qtyStr == "" {
		fatal("Usage: slpmeta mint --token <id> --qty <n> [flags]")
	}

	typ, err := parseTokenType(*typeStr)
	if err != nil {
		fatal("%v", err)
	}
	quantity, err := slp.ParseQuantity(*qtyStr)
	if err != nil {
		fatal("invalid --qty: %v", err)
	}

	var vout *int
	if *baton != 0 {
		vout = baton
	}

	logger := log.WithComponent("mint")
	logger.Debug().
		Str("type", typ.String()).
		Str("token", *tokenID).
		Msg("encoding")

	msg, err := slp.Mint(typ, slp.HexText(*tokenID), vout, quantity)
	if err != nil {
		fatal("mint: %v", err)
	}

	emit(msg)
}

// ── send ────────────────────────────────────────────────────────────────

func cmdSend(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	typeStr := fs.String("type", "fungible", "Token type: fungible, group or child")
	tokenID := fs.String("token", "", "Token ID (32-byte hex)")
	qtyStr := fs.String("qty", "", "Comma-separated output amounts")
	fs.Parse(args)

	if *tokenID == "" || *qtyStr == "" {
		fatal("Usage: slpmeta send --token <id> --qty <n>[,<n>...] [flags]")
	}

	typ, err := parseTokenType(*typeStr)
	if err != nil {
		fatal("%v", err)
	}
	amounts, err := parseAmounts(*qtyStr)
	if err != nil {
		fatal("invalid --qty: %v", err)
	}

	logger := log.WithComponent("send")
	logger.Debug().
		Str("type", typ.String()).
		Str("token", *tokenID).
		Int("outputs", len(amounts)).
		Msg("encoding")

	msg, err := slp.Send(typ, slp.HexText(*tokenID), amounts)
	if err != nil {
		fatal("send: %v", err)
	}

	emit(msg)
}

// ── Parsing helpers ─────────────────────────────────────────────────────

// parseTokenType maps a CLI name or numeric value to a token type.
func parseTokenType(s string) (slp.TokenType, error) {
	switch strings.ToLower(s) {
	case "fungible", "1":
		return slp.TokenTypeFungible, nil
	case "group", "nft1-group", "129":
		return slp.TokenTypeNFT1Group, nil
	case "child", "nft1-child", "65":
		return slp.TokenTypeNFT1Child, nil
	default:
		return 0, fmt.Errorf("unknown token type %q (want fungible, group or child)", s)
	}
}

// parseAmounts splits a comma-separated list of decimal amounts.
func parseAmounts(s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	amounts := make([]*big.Int, len(parts))
	for i, p := range parts {
		n, err := slp.ParseQuantity(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("amount %d: %w", i, err)
		}
		amounts[i] = n
	}
	return amounts, nil
}

// emit writes the encoded script to stdout as hex.
func emit(msg []byte) {
	fmt.Println(hex.EncodeToString(msg))
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
