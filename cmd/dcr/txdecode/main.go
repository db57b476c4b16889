// Command txdecode decodes hex-encoded Decred transactions or blocks and prints them as JSON.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/decred"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const maxLineSize = 64 << 20

type config struct {
	Offset  int    `long:"offset" env:"DCR_TXDECODE_OFFSET" description:"byte offset of the first transaction" default:"0"`
	All     bool   `long:"all" description:"decode transactions back to back until the input is consumed"`
	Block   bool   `long:"block" description:"decode the input as a serialized block"`
	Network string `long:"network" env:"DCR_TXDECODE_NETWORK" description:"network used to encode addresses" default:"mainnet"`
	Args    struct {
		Hex []string `positional-arg-name:"hex" description:"hex encoded input; read from stdin lines when omitted"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("decode failed", zap.Error(err))
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	network, err := model.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}
	decoder, err := decred.NewScriptDecoder(network)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	decodeOne := func(n int, input string) error {
		buf, err := hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("input %d: invalid hex: %w", n, err)
		}
		views, err := decodeInput(cfg, buf, decoder)
		if err != nil {
			return fmt.Errorf("input %d: %w", n, err)
		}
		for _, v := range views {
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}

	if len(cfg.Args.Hex) > 0 {
		for i, input := range cfg.Args.Hex {
			if err := decodeOne(i, input); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := decodeOne(n, line); err != nil {
			return err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func decodeInput(cfg config, buf []byte, decoder decred.ScriptDecoder) ([]any, error) {
	if cfg.Block {
		block, _, err := dcrwire.DecodeBlock(buf, cfg.Offset)
		if err != nil {
			return nil, err
		}
		return []any{newBlockView(block, decoder)}, nil
	}

	var views []any
	offset := cfg.Offset
	for {
		tx, end, err := dcrwire.DecodeTransaction(buf, offset)
		if err != nil {
			return nil, fmt.Errorf("transaction at offset %d: %w", offset, err)
		}
		v := newTxView(tx, decoder)
		v.EndOffset = end
		views = append(views, v)

		if !cfg.All || end >= len(buf) {
			return views, nil
		}
		offset = end
	}
}
