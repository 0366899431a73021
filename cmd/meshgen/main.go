package main

import (
	"flag"
	"log"

	"github.com/danmuck/meshghost/internal/config"
)

func main() {
	output := flag.String("output", "run.toml", "output path for the config template")
	validate := flag.Bool("validate", false, "validate an existing config file instead of writing one")
	input := flag.String("input", "", "config path to validate (defaults to -output)")
	force := flag.Bool("force", false, "overwrite an existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		if _, err := config.LoadRunConfig(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated run config at %s", path)
		return
	}

	if err := config.WriteTemplate(*output, "run", *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote run config template to %s", *output)
}
