// boxcheck runs a tengo lint script against a level document and reports
// its findings. The script sees a "level" map of precomputed stats and the
// fail/warn builtins; any fail makes the exit status nonzero.
//
// Usage:
//
//	boxcheck -level levels/intro.box -script scripts/boxcheck/basic.tengo
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"boxtree/level"
)

func main() {
	levelPath := flag.String("level", "", "Level file to check (.box)")
	scriptPath := flag.String("script", "", "Check script (.tengo)")
	fix := flag.Bool("fix", false, "Rewrite the level in canonical form when all checks pass")
	flag.Parse()

	if *levelPath == "" || *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*levelPath)
	if err != nil {
		log.Fatalf("Failed to read level: %v", err)
	}
	lvl, err := level.Parse(string(data))
	if err != nil {
		log.Fatalf("Failed to parse level: %v", err)
	}

	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	failures, warnings, err := runChecks(lvl, src)
	if err != nil {
		log.Fatalf("Check script error: %v", err)
	}

	for _, w := range warnings {
		fmt.Printf("warn: %s\n", w)
	}
	for _, f := range failures {
		fmt.Printf("FAIL: %s\n", f)
	}
	if len(failures) > 0 {
		os.Exit(1)
	}

	if *fix {
		canonical := level.Serialize(lvl)
		if canonical != string(data) {
			if err := os.WriteFile(*levelPath, []byte(canonical), 0644); err != nil {
				log.Fatalf("Failed to rewrite level: %v", err)
			}
			fmt.Printf("fixed: %s rewritten in canonical form\n", *levelPath)
		}
	}
	fmt.Printf("ok: %s (%d blocks)\n", *levelPath, Collect(lvl).Blocks)
}

// runChecks executes the script with the level stats bound to "level" and
// collects everything passed to fail() and warn().
func runChecks(lvl *level.Level, src []byte) (failures, warnings []string, err error) {
	record := func(dst *[]string) tengo.CallableFunc {
		return func(args ...tengo.Object) (tengo.Object, error) {
			for _, a := range args {
				if s, ok := a.(*tengo.String); ok {
					*dst = append(*dst, s.Value)
				} else {
					*dst = append(*dst, a.String())
				}
			}
			return tengo.UndefinedValue, nil
		}
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "text", "math"))
	if err := script.Add("level", Collect(lvl).scriptValue(lvl.Header)); err != nil {
		return nil, nil, err
	}
	if err := script.Add("fail", &tengo.UserFunction{Name: "fail", Value: record(&failures)}); err != nil {
		return nil, nil, err
	}
	if err := script.Add("warn", &tengo.UserFunction{Name: "warn", Value: record(&warnings)}); err != nil {
		return nil, nil, err
	}

	if _, err := script.Run(); err != nil {
		return nil, nil, err
	}
	return failures, warnings, nil
}
