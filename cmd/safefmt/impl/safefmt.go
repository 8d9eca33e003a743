package safefmt

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/jdibling/safefmt/vet"
)

const (
	ShortUsage = "safefmt [-v -json -ff -conf file] [file.go | dir | dir/...] ...\n"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func isDir(name string) bool {
	if fi, err := os.Lstat(name); err == nil {
		return fi.IsDir()
	}
	return false
}

func isFile(name string) bool {
	if fi, err := os.Lstat(name); err == nil {
		return !fi.IsDir()
	}
	return false
}

// Main runs the checker over the targets given as arguments and
// returns the process exit status: 0 when clean, 1 when findings
// exist, 2 on usage errors.
func Main(flag *flag.FlagSet, args []string) int {
	var (
		verbose  = flag.Bool("v", false, "print verbose information")
		jsonOut  = flag.Bool("json", false, "print diagnostics in json format")
		failfast = flag.Bool("ff", false, "fail fast (stop at the first target with findings)")
		confFile = flag.String("conf", "", "config file (json or yaml); default: safefmt.cfg of each checked directory")
	)
	flag.Parse(args)
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: "+ShortUsage)
		flag.PrintDefaults()
		return 2
	}
	if *verbose {
		vet.SetDebug(vet.DbgFlagAll)
	}
	var conf *vet.Config
	if *confFile != "" {
		c, err := vet.LoadConfig(*confFile)
		check(err)
		conf = c
	}

	status := 0
	for _, target := range flag.Args() {
		recursively := strings.HasSuffix(target, "/...")
		if recursively {
			target = strings.TrimSuffix(target, "/...")
		}
		c := vet.NewChecker(confFor(conf, target))
		var err error
		if isDir(target) {
			err = c.CheckDir(target, recursively)
		} else {
			err = c.CheckFile(target)
		}
		check(err)
		ds := c.Diagnostics()
		emit(ds, *jsonOut)
		if len(ds) > 0 {
			status = 1
			if *failfast {
				break
			}
		}
	}
	return status
}

// confFor resolves the config for a target: an explicit -conf wins,
// then a safefmt.cfg in a checked directory, then the defaults.
func confFor(conf *vet.Config, target string) *vet.Config {
	if conf != nil {
		return conf
	}
	if isDir(target) {
		cfg := filepath.Join(target, vet.ConfFileName)
		if isFile(cfg) {
			c, err := vet.LoadConfig(cfg)
			check(err)
			return c
		}
	}
	return nil
}

func emit(ds []vet.Diagnostic, asJson bool) {
	if asJson {
		if len(ds) == 0 {
			return
		}
		b, err := json.MarshalIndent(ds, "", "\t")
		check(err)
		os.Stdout.Write(append(b, '\n'))
		return
	}
	for _, d := range ds {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", d.Pos, d.Func, d.Message)
	}
}

func check(err error) {
	if err != nil {
		log.Panicln(err)
	}
}
