package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	crosshairkit "github.com/cs2tools/crosshair-kit"
	"github.com/cs2tools/crosshair-kit/config"
	"github.com/cs2tools/crosshair-kit/sharecode"
)

func main() {
	var (
		decode      = flag.String("decode", "", "Share code to decode and print")
		encode      = flag.Bool("encode", false, "Encode a profile from key=value args over the defaults")
		apply       = flag.String("apply", "", "Share code to apply to a config file")
		cfgFile     = flag.String("cfg", "", "Target config file for -apply")
		copySrc     = flag.String("copy", "", "Source config directory to copy")
		copyDst     = flag.String("to", "", "Destination config directory for -copy")
		backup      = flag.Bool("backup", true, "Back up the destination before -copy overwrites it")
		locate      = flag.Bool("locate", false, "Print the detected Steam install directory")
		interactive = flag.Bool("i", false, "Interactive editor with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		sharecode.SetLogger(logger)
		config.SetLogger(logger)
	}

	var err error
	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		err = runInteractive()
	case *decode != "":
		err = runDecode(*decode)
	case *encode:
		err = runEncode(flag.Args())
	case *apply != "":
		err = runApply(*apply, *cfgFile)
	case *copySrc != "":
		err = runCopy(*copySrc, *copyDst, *backup)
	case *locate:
		err = runLocate()
	default:
		fmt.Fprintln(os.Stderr, "Usage: crosshair -decode CODE")
		fmt.Fprintln(os.Stderr, "       crosshair -encode [field=value ...]")
		fmt.Fprintln(os.Stderr, "       crosshair -apply CODE -cfg FILE")
		fmt.Fprintln(os.Stderr, "       crosshair -copy SRCDIR -to DSTDIR [-backup=false]")
		fmt.Fprintln(os.Stderr, "       crosshair -locate")
		fmt.Fprintln(os.Stderr, "       crosshair -i  (interactive editor)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDecode(code string) error {
	p, err := sharecode.Decode(code)
	if err != nil {
		return err
	}
	fmt.Printf("Profile: %s\n", p.Name)
	for _, cv := range p.ConVars() {
		fmt.Printf("%s %s\n", cv.Name, cv.Value)
	}
	return nil
}

func runEncode(args []string) error {
	p := crosshairkit.Default()
	fields := profileFields()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("argument %q is not field=value", arg)
		}
		fs := fieldByName(fields, key)
		if fs == nil {
			return fmt.Errorf("unknown field %q", key)
		}
		if err := fs.set(&p, value); err != nil {
			return err
		}
	}
	fmt.Println(sharecode.Encode(&p))
	return nil
}

func runApply(code, cfgFile string) error {
	if cfgFile == "" {
		return fmt.Errorf("-apply needs -cfg FILE")
	}
	p, err := sharecode.Decode(code)
	if err != nil {
		return err
	}
	if err := config.Apply(cfgFile, p); err != nil {
		return err
	}
	fmt.Printf("Applied %s to %s\n", p.Name, cfgFile)
	return nil
}

func runCopy(src, dst string, backup bool) error {
	if dst == "" {
		return fmt.Errorf("-copy needs -to DSTDIR")
	}
	if err := config.CopyTree(src, dst, config.CopyOptions{Backup: backup}); err != nil {
		return err
	}
	fmt.Printf("Copied %s to %s\n", src, dst)
	return nil
}

func runLocate() error {
	dir, err := config.FindInstallDir()
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}
