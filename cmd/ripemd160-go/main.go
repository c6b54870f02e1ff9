package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/ncodysoftware/ripemd160-go/hash160"
	"github.com/ncodysoftware/ripemd160-go/log"
	"github.com/ncodysoftware/ripemd160-go/ripemd160"
	"github.com/ncodysoftware/ripemd160-go/stackerr"
)

type options struct {
	String   bool   `short:"s" long:"string" description:"hash the remaining arguments as literal strings"`
	Hash160  bool   `long:"hash160" description:"apply SHA-256 before RIPEMD-160 (HASH160)"`
	LogLevel string `long:"loglevel" description:"DEBUG, INFO, WARN, ERR or FATAL"`
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	args, err := flags.Parse(&opts)
	if err != nil {
		flagsErr, ok := err.(*flags.Error)
		if ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return stackerr.Wrap(err)
	}
	if opts.LogLevel == "" {
		opts.LogLevel = initConfig()
	}
	logger := log.New(
		log.LevelFromString(opts.LogLevel), "ripemd160-go",
	)
	if opts.String {
		for _, arg := range args {
			line, err := digestLine(opts.Hash160, []byte(arg), arg)
			if err != nil {
				return stackerr.Wrap(err)
			}
			fmt.Println(line)
		}
		return nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return stackerr.Wrap(err)
		}
		logger.Debugf("read %d bytes from stdin", len(data))
		line, err := digestLine(opts.Hash160, data, "-")
		if err != nil {
			return stackerr.Wrap(err)
		}
		fmt.Println(line)
		return nil
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return stackerr.Wrap(err)
		}
		logger.Debugf("read %d bytes from %s", len(data), name)
		line, err := digestLine(opts.Hash160, data, name)
		if err != nil {
			return stackerr.Wrap(err)
		}
		fmt.Println(line)
	}
	return nil
}

func digestLine(useHash160 bool, data []byte, name string) (string, error) {
	var digest [20]byte
	if useHash160 {
		digest = hash160.Sum(data)
	} else {
		var err error
		digest, err = ripemd160.Sum160(data)
		if err != nil {
			return "", stackerr.Wrap(err)
		}
	}
	return hex.EncodeToString(digest[:]) + "  " + name, nil
}

func initConfig() string {
	homedir, err := os.UserHomeDir()
	if err == nil {
		godotenv.Load(homedir + "/.config/ripemd160-go/ripemd160-go.conf")
	}
	lvl := os.Getenv("LOG_LEVEL")
	if lvl == "" {
		lvl = "INFO"
	}
	return lvl
}
