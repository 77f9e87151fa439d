// Command axisctl inspects and edits the axes stored in a player profile.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/axiscontrols/config"
)

const usage = `usage: axisctl [-profile file] <command> [args]

commands:
  list                      list every axis in the profile
  export [-clipboard [-wait d]] name
                            print one axis as yaml
  import [-clipboard] file  add or replace an axis from a yaml export ("-" reads stdin)
  delete name               remove an axis and every key it saved
`

func main() {
	log.SetFlags(0)
	profile := flag.String("profile", config.DefaultProfile, "profile file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	p, err := openProfile(*profile)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "list":
		err = p.list(os.Stdout)
	case "export":
		err = runExport(p, args, os.Stdout)
	case "import":
		err = runImport(p, args)
	case "delete":
		err = runDelete(p, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runExport(p *profile, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	clip := fs.Bool("clipboard", false, "copy to the system clipboard instead of printing")
	wait := fs.Duration("wait", 0, "with -clipboard, stop serving the clipboard after this long (0 waits until it is overwritten)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("axisctl: export needs an axis name")
	}
	data, err := p.export(fs.Arg(0))
	if err != nil {
		return err
	}
	if *clip {
		return writeClipboard(data, *wait)
	}
	_, err = out.Write(data)
	return err
}

func runImport(p *profile, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	clip := fs.Bool("clipboard", false, "read the axis from the system clipboard")
	_ = fs.Parse(args)

	var (
		data []byte
		err  error
	)
	switch {
	case *clip:
		data, err = readClipboard()
	case fs.NArg() != 1:
		return fmt.Errorf("axisctl: import needs a file")
	case fs.Arg(0) == "-":
		data, err = readAll(os.Stdin)
	default:
		data, err = os.ReadFile(fs.Arg(0))
	}
	if err != nil {
		return err
	}

	name, replaced, err := p.importAxis(data)
	if err != nil {
		return err
	}
	if replaced {
		log.Printf("replaced %s", name)
	} else {
		log.Printf("added %s", name)
	}
	return nil
}

func runDelete(p *profile, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("axisctl: delete needs an axis name")
	}
	if err := p.delete(args[0]); err != nil {
		return err
	}
	log.Printf("deleted %s", args[0])
	return nil
}
