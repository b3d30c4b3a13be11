// suitefilter filters and retags test suite documents.
//
// Usage:
//
//	suitefilter --include critical --suite Top.Smoke plan.yaml
//	suitefilter --set-tag smoke --output out/ plans/a.json plans/b.json
//
// Input documents are YAML or JSON renderings of a suite tree. Tag
// mutations run before filtering, the same order a runner applies
// --set-tag before --include/--exclude. Each document is processed
// independently; distinct documents run in parallel.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"

	"github.com/suitekit/core/pkg/match"
	"github.com/suitekit/core/pkg/model"
	"github.com/suitekit/core/pkg/suggest"
	"github.com/suitekit/core/pkg/version"
	"github.com/suitekit/core/pkg/visitors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// multiFlag collects repeated string flag values in order.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("suitefilter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var suites, tests, include, exclude, setTags, removeTags multiFlag
	fs.Var(&suites, "suite", "Keep only suites matching this name pattern (repeatable)")
	fs.Var(&tests, "test", "Keep only tests matching this name pattern (repeatable)")
	fs.Var(&include, "include", "Keep only tests matching this tag pattern (repeatable)")
	fs.Var(&exclude, "exclude", "Drop tests matching this tag pattern (repeatable)")
	fs.Var(&setTags, "set-tag", "Add this tag to every test (repeatable)")
	fs.Var(&removeTags, "remove-tag", "Remove tags matching this pattern from every test (repeatable)")
	output := fs.String("output", "", "Directory for filtered documents (default stdout)")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "Number of documents processed concurrently")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.Version)
		return 0
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "suitefilter: no input documents")
		fs.Usage()
		return 2
	}

	setter := visitors.NewTagSetter(setTags, removeTags)
	filter := visitors.NewFilter(
		visitors.WithIncludeSuites(suites...),
		visitors.WithIncludeTests(tests...),
		visitors.WithIncludeTags(include...),
		visitors.WithExcludeTags(exclude...),
	)

	encoded := make([][]byte, len(files))
	failures := make([]error, len(files))

	n := *workers
	if n <= 0 {
		n = 1
	}
	sem := semaphore.NewWeighted(int64(n))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := sem.Acquire(context.Background(), 1); err != nil {
				return nil
			}
			defer sem.Release(1)
			encoded[i], failures[i] = processDocument(file, setter, filter, suites)
			return nil
		})
	}
	_ = g.Wait()

	code := 0
	for i, file := range files {
		if failures[i] != nil {
			fmt.Fprintf(stderr, "suitefilter: %v\n", failures[i])
			code = 1
			continue
		}
		if *output == "" {
			if _, err := stdout.Write(encoded[i]); err != nil {
				fmt.Fprintf(stderr, "suitefilter: %v\n", err)
				code = 1
			}
			continue
		}
		if err := writeDocument(*output, file, encoded[i]); err != nil {
			fmt.Fprintf(stderr, "suitefilter: %v\n", err)
			code = 1
		}
	}
	return code
}

// processDocument decodes one suite document, applies the tag setter
// and filter, and re-encodes it in its input format.
func processDocument(path string, setter *visitors.TagSetter, filter *visitors.Filter, suitePatterns []string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root := &model.Suite{}
	asJSON := strings.EqualFold(filepath.Ext(path), ".json")
	if asJSON {
		err = json.Unmarshal(data, root)
	} else {
		err = yaml.Unmarshal(data, root)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	root.Relink()

	if setter.Configured() {
		root.Visit(setter)
	}
	if !filter.Empty() {
		longnames := suiteLongnames(root)
		root.Visit(filter)
		if root.CountTests() == 0 {
			return nil, notFoundError(path, suitePatterns, longnames)
		}
	}

	if asJSON {
		out, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return yaml.Marshal(root)
}

// notFoundError explains an all-pruning filter, recommending close
// suite names when a literal suite pattern missed.
func notFoundError(path string, suitePatterns, longnames []string) error {
	msg := fmt.Sprintf("%s: no tests match the given criteria.", path)
	if len(suitePatterns) > 0 {
		finder := suggest.Finder{Normalize: func(s string) string {
			return match.Normalize(s, "_ ")
		}}
		msg = suggest.Format(msg, finder.Find(suitePatterns[0], longnames))
	}
	return fmt.Errorf("%s", msg)
}

// suiteLongnames collects every suite longname in the tree, root first.
func suiteLongnames(root *model.Suite) []string {
	c := &longnameCollector{}
	root.Visit(c)
	return c.names
}

type longnameCollector struct {
	model.Base
	names []string
}

func (c *longnameCollector) StartSuite(s *model.Suite) model.Traversal {
	c.names = append(c.names, s.Longname())
	return model.Continue
}

func (c *longnameCollector) StartTest(*model.Test) model.Traversal {
	return model.SkipChildren
}

func writeDocument(dir, file string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filepath.Base(file)), data, 0o644)
}
