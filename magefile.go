//go:build mage

package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const versionFile = "pkg/version/version.go"

var (
	versionRe     = regexp.MustCompile(`^\d+\.\d+\.\d+(-(alpha|beta|rc)\.\d+|-dev(\.\d{8})?)?$`)
	versionLineRe = regexp.MustCompile(`const Version = "[^"]*"`)
)

var Default = Build

// Build compiles all packages and the suitefilter binary.
func Build() error {
	if err := sh.Run("go", "build", "./..."); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/suitefilter", "./cmd/suitefilter")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	for _, dir := range []string{"bin", "dist"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}

// Dist creates a source archive under dist/.
func Dist() error {
	mg.Deps(Clean)
	v, err := currentVersion()
	if err != nil {
		return err
	}
	if err := os.MkdirAll("dist", 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("dist/suitekit-%s.tar.gz", v)
	if err := sh.Run("git", "archive", "--format=tar.gz", "-o", name, "HEAD"); err != nil {
		return err
	}
	fmt.Println("Distributions:")
	fmt.Println("  " + name)
	return nil
}

// Version groups release version tasks.
type Version mg.Namespace

// Set writes the given version to pkg/version. "dev" bumps the patch
// level and appends a dated -dev suffix; "keep" leaves the file
// untouched. A plain version must be X.Y.Z with an optional
// -alpha.N/-beta.N/-rc.N or -dev suffix.
func (Version) Set(version string) error {
	if version == "keep" {
		v, err := currentVersion()
		if err != nil {
			return err
		}
		fmt.Println("Version:", v)
		return nil
	}
	version, err := resolveVersion(version)
	if err != nil {
		return err
	}
	if err := writeVersionFile(version); err != nil {
		return err
	}
	fmt.Println("Version:", version)
	return nil
}

// Release groups release tasks.
type Release mg.Namespace

// Tag sets the version, commits it, creates an annotated tag and
// pushes the tags.
func (Release) Tag(version string) error {
	if err := (Version{}).Set(version); err != nil {
		return err
	}
	v, err := currentVersion()
	if err != nil {
		return err
	}
	if err := sh.Run("git", "commit", "-m", fmt.Sprintf("Update version to %s", v), versionFile); err != nil {
		return err
	}
	if err := sh.Run("git", "tag", "-a", "v"+v, "-m", "Release "+v); err != nil {
		return err
	}
	return sh.Run("git", "push", "--follow-tags")
}

func resolveVersion(version string) (string, error) {
	if version == "dev" {
		current, err := currentVersion()
		if err != nil {
			return "", err
		}
		version = nextDevVersion(current)
	}
	if version == "" {
		return "", fmt.Errorf("empty version")
	}
	if !versionRe.MatchString(version) {
		return "", fmt.Errorf("invalid version %q", version)
	}
	if strings.HasSuffix(version, "-dev") {
		version += "." + time.Now().Format("20060102")
	}
	return version, nil
}

// nextDevVersion bumps the patch level of a release version, or strips
// the pre-release suffix of one, and appends -dev.
func nextDevVersion(current string) string {
	var major, minor, patch int
	if _, err := fmt.Sscanf(current, "%d.%d.%d", &major, &minor, &patch); err != nil {
		return current
	}
	base := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if base == current {
		patch++
	}
	return fmt.Sprintf("%d.%d.%d-dev", major, minor, patch)
}

func currentVersion() (string, error) {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return "", err
	}
	m := regexp.MustCompile(`const Version = "([^"]*)"`).FindSubmatch(content)
	if m == nil {
		return "", fmt.Errorf("no version constant in %s", versionFile)
	}
	return string(m[1]), nil
}

func writeVersionFile(version string) error {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return err
	}
	updated := versionLineRe.ReplaceAll(content, []byte(fmt.Sprintf(`const Version = "%s"`, version)))
	return os.WriteFile(versionFile, updated, 0o644)
}
